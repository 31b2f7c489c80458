// Package mediatest provides canned download-library values for tests.
package mediatest

import (
	"context"

	"github.com/tubeharvest/shipkit/internal/media"
)

// Video returns a fully populated single-video fixture.
func Video() media.VideoInfo {
	return media.VideoInfo{
		ID:         "test_video_id",
		Title:      "Test Video Title",
		Uploader:   "Test Channel",
		Duration:   120,
		ViewCount:  1000,
		UploadDate: "20231215",
		Ext:        "mp4",
		Filesize:   1024000,
	}
}

// Playlist returns a three-entry playlist fixture in playlist order.
func Playlist() media.PlaylistInfo {
	return media.PlaylistInfo{
		Title: "Test Playlist",
		Entries: []media.PlaylistEntry{
			{URL: "https://www.youtube.com/watch?v=test1", Title: "Video 1"},
			{URL: "https://www.youtube.com/watch?v=test2", Title: "Video 2"},
			{URL: "https://www.youtube.com/watch?v=test3", Title: "Video 3"},
		},
	}
}

// StubExtractor implements media.InfoExtractor with a preset result and
// records every URL it is asked about.
type StubExtractor struct {
	Info  *media.VideoInfo
	Err   error
	Calls []string
}

// NewStubExtractor returns a stub preloaded with the Video fixture.
func NewStubExtractor() *StubExtractor {
	v := Video()
	return &StubExtractor{Info: &v}
}

func (s *StubExtractor) ExtractInfo(_ context.Context, url string) (*media.VideoInfo, error) {
	s.Calls = append(s.Calls, url)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Info, nil
}

package media_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubeharvest/shipkit/internal/media"
	"github.com/tubeharvest/shipkit/internal/media/mediatest"
)

func TestStubExtractor_ReturnsPresetInfo(t *testing.T) {
	stub := mediatest.NewStubExtractor()

	info, err := stub.ExtractInfo(context.Background(), "https://www.youtube.com/watch?v=test1")
	require.NoError(t, err)
	assert.Equal(t, "Test Video Title", info.Title)
	assert.Equal(t, "Test Channel", info.Uploader)
	assert.Equal(t, 120, info.Duration)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=test1"}, stub.Calls)
}

func TestStubExtractor_Error(t *testing.T) {
	stub := &mediatest.StubExtractor{Err: errors.New("video unavailable")}
	_, err := stub.ExtractInfo(context.Background(), "https://example.com/gone")
	assert.Error(t, err)
	assert.Len(t, stub.Calls, 1)
}

func TestStubExtractor_SatisfiesInfoExtractor(t *testing.T) {
	var _ media.InfoExtractor = mediatest.NewStubExtractor()
}

func TestPlaylistFixture_OrderedEntries(t *testing.T) {
	pl := mediatest.Playlist()
	require.Len(t, pl.Entries, 3)
	assert.Equal(t, "Video 1", pl.Entries[0].Title)
	assert.Equal(t, "Video 3", pl.Entries[2].Title)
	assert.Equal(t, "Test Playlist", pl.Title)
}

func TestVideoFixture_Shape(t *testing.T) {
	v := mediatest.Video()
	assert.Equal(t, "test_video_id", v.ID)
	assert.Equal(t, "mp4", v.Ext)
	assert.Equal(t, int64(1024000), v.Filesize)
	assert.Equal(t, "20231215", v.UploadDate)
}

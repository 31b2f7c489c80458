// Package media holds the data shapes of the wrapped download library.
// The library itself owns retrieval, format negotiation, throttling and
// resume; shipkit only needs its shapes for test doubles.
package media

import "context"

// VideoInfo is the metadata the download library reports for one video.
type VideoInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Uploader   string `json:"uploader"`
	Duration   int    `json:"duration"` // seconds
	ViewCount  int64  `json:"view_count"`
	UploadDate string `json:"upload_date"` // YYYYMMDD
	Ext        string `json:"ext"`
	Filesize   int64  `json:"filesize"`
}

// PlaylistEntry is one item of a playlist, in playlist order.
type PlaylistEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// PlaylistInfo is the metadata the download library reports for a playlist.
type PlaylistInfo struct {
	Title   string          `json:"title"`
	Entries []PlaylistEntry `json:"entries"`
}

// InfoExtractor is the slice of the download library's client that the
// CLI layer consumes.
type InfoExtractor interface {
	ExtractInfo(ctx context.Context, url string) (*VideoInfo, error)
}

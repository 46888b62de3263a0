// Package youtube adapts the YouTube Data API v3 into the payload types
// the catalog works with. The client is a thin read-only adapter: every
// call is a single fresh request with no retries and no caching.
package youtube

import "time"

// ChannelPayload is the channel metadata extracted from a channels.list
// response.
type ChannelPayload struct {
	ID             string
	Title          string
	Description    string
	PublishedAt    time.Time
	ProfilePicture string
	BannerImage    string
	Subscribers    int64
	VideoCount     int64
	ViewCount      int64
}

// VideoPayload is the video metadata extracted from a videos.list
// response. RawDuration carries the ISO 8601 duration string as received;
// parsing and classification happen in the ingestion layer.
type VideoPayload struct {
	ID           string
	Title        string
	ChannelID    string
	Description  string
	Tags         []string
	PublishedAt  time.Time
	RawDuration  string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

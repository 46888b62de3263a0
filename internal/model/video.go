package model

import (
	"fmt"
	"time"
)

// FormatType is the local short/long classification of a video. It is
// derived purely from duration, never taken from the provider.
type FormatType string

const (
	FormatVideo  FormatType = "video"
	FormatShorts FormatType = "shorts"
)

// ParseFormatType validates a caller-supplied format type string.
func ParseFormatType(s string) (FormatType, error) {
	switch FormatType(s) {
	case FormatVideo, FormatShorts:
		return FormatType(s), nil
	}
	return "", fmt.Errorf("invalid video type %q: must be %q or %q", s, FormatVideo, FormatShorts)
}

// Video is a catalogued video. ChannelID is fixed at insert time and never
// altered by re-scrapes; the remaining fields are refreshed on every scrape.
type Video struct {
	VideoID       string     `json:"videoId"`
	ChannelID     string     `json:"channelId"`
	VideoTitle    string     `json:"videoTitle"`
	PublishedAt   time.Time  `json:"publishedAt"`
	VideoCategory string     `json:"videoCategory"`
	FormatType    FormatType `json:"formatType"`
	Duration      int        `json:"duration"`
}

// VideoStats holds the last-known statistics for a video. One row per
// video; fully overwritten on every scrape.
type VideoStats struct {
	VideoID       string    `json:"videoId"`
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	CommentCount  int64     `json:"commentCount"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	LastScrapedAt time.Time `json:"lastScrapedAt"`
}

// VideoRow is a video joined with its stats and owning channel for list
// views. Joined columns are nullable (LEFT JOINs).
type VideoRow struct {
	VideoID       string     `json:"videoId"`
	VideoTitle    string     `json:"videoTitle"`
	PublishedAt   time.Time  `json:"publishedAt"`
	ChannelName   *string    `json:"channelName,omitempty"`
	VideoCategory string     `json:"videoCategory"`
	FormatType    FormatType `json:"formatType"`
	Duration      int        `json:"duration"`
	ViewCount     *int64     `json:"viewCount,omitempty"`
	LikeCount     *int64     `json:"likeCount,omitempty"`
	CommentCount  *int64     `json:"commentCount,omitempty"`
}

// VideoSummary is the API response for a successful video scrape.
type VideoSummary struct {
	VideoID   string     `json:"videoId"`
	Title     string     `json:"title"`
	ChannelID string     `json:"channelId"`
	Duration  int        `json:"duration"`
	Format    FormatType `json:"format"`
}

package model

import "time"

// Channel is a catalogued YouTube channel. The category is assigned by the
// operator at first scrape and never changed by re-scrapes.
type Channel struct {
	ChannelID   string    `json:"channelId"`
	ChannelName string    `json:"channelName"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ChannelStats holds the last-known statistics for a channel. Exactly one
// row per channel; fully overwritten on every scrape, no history kept.
type ChannelStats struct {
	ChannelID        string    `json:"channelId"`
	SubscribersCount int64     `json:"subscribersCount"`
	TotalVideoCount  int64     `json:"totalVideoCount"`
	TotalViewCount   int64     `json:"totalViewCount"`
	Description      string    `json:"description"`
	ProfilePicture   string    `json:"profilePicture"`
	BannerImage      *string   `json:"bannerImage,omitempty"`
	LastScrapedAt    time.Time `json:"lastScrapedAt"`
}

// ChannelRow is a channel joined with its stats for list views. Stats
// columns are nullable because the join is a LEFT JOIN.
type ChannelRow struct {
	ChannelID        string    `json:"channelId"`
	ChannelName      string    `json:"channelName"`
	Category         string    `json:"category"`
	PublishedAt      time.Time `json:"publishedAt"`
	SubscribersCount *int64    `json:"subscribersCount,omitempty"`
	TotalVideoCount  *int64    `json:"totalVideoCount,omitempty"`
	TotalViewCount   *int64    `json:"totalViewCount,omitempty"`
	ProfilePicture   *string   `json:"profilePicture,omitempty"`
}

// ChannelSummary is the API response for a successful channel scrape.
type ChannelSummary struct {
	ChannelID   string `json:"channelId"`
	ChannelName string `json:"channelName"`
	Subscribers int64  `json:"subscribers"`
	Videos      int64  `json:"videos"`
	Views       int64  `json:"views"`
}

package model

// StatsResponse is the aggregate dashboard view of the catalog.
type StatsResponse struct {
	TotalChannels      int64            `json:"totalChannels"`
	TotalVideos        int64            `json:"totalVideos"`
	TotalShorts        int64            `json:"totalShorts"`
	ChannelsByCategory map[string]int64 `json:"channelsByCategory"`
}

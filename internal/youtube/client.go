package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// MaxPageSize is the hard per-page cap of the playlistItems endpoint.
const MaxPageSize = 50

// Client is the Data API adapter for channel, playlist and video reads.
type Client struct {
	svc *ytapi.Service
}

// NewClient builds a Data API client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: api key is required")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	svc, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// FetchChannel looks up a channel by canonical id ("UC...") or by legacy
// username (with or without a leading "@").
func (c *Client) FetchChannel(ctx context.Context, idOrUsername string) (*ChannelPayload, error) {
	parts := []string{"snippet", "statistics", "brandingSettings"}

	var call *ytapi.ChannelsListCall
	switch {
	case strings.HasPrefix(idOrUsername, "@"):
		call = c.svc.Channels.List(parts).ForUsername(idOrUsername[1:])
	case strings.HasPrefix(idOrUsername, "UC"):
		call = c.svc.Channels.List(parts).Id(idOrUsername)
	default:
		call = c.svc.Channels.List(parts).ForUsername(idOrUsername)
	}

	resp, err := call.MaxResults(1).Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: channel %q", ErrNotFound, idOrUsername)
	}

	item := resp.Items[0]
	p := &ChannelPayload{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Subscribers: int64(item.Statistics.SubscriberCount),
		VideoCount:  int64(item.Statistics.VideoCount),
		ViewCount:   int64(item.Statistics.ViewCount),
	}
	p.PublishedAt, _ = time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		p.ProfilePicture = item.Snippet.Thumbnails.High.Url
	}
	if item.BrandingSettings != nil && item.BrandingSettings.Image != nil {
		p.BannerImage = item.BrandingSettings.Image.BannerExternalUrl
	}

	log.Debug().Str("channel_id", p.ID).Str("title", p.Title).Msg("fetched channel")
	return p, nil
}

// FetchUploadsPlaylistID resolves the id of the channel's uploads playlist.
func (c *Client) FetchUploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", classifyAPIError(err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("%w: channel %q", ErrNotFound, channelID)
	}

	cd := resp.Items[0].ContentDetails
	if cd == nil || cd.RelatedPlaylists == nil || cd.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("%w: channel %q has no uploads playlist", ErrNotFound, channelID)
	}
	return cd.RelatedPlaylists.Uploads, nil
}

// ListPlaylistItems returns one page of video ids from a playlist plus the
// token for the next page ("" when exhausted). pageSize is clamped to the
// API maximum of 50.
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID string, pageSize int64, pageToken string) ([]string, string, error) {
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	call := c.svc.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, "", classifyAPIError(err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails != nil {
			ids = append(ids, item.ContentDetails.VideoId)
		}
	}
	return ids, resp.NextPageToken, nil
}

// FetchVideosBatch fetches full metadata for up to 50 video ids in one
// request. Ids unknown to the API are silently absent from the result.
func (c *Client) FetchVideosBatch(ctx context.Context, videoIDs []string) ([]VideoPayload, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	resp, err := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	payloads := make([]VideoPayload, 0, len(resp.Items))
	for _, item := range resp.Items {
		p := VideoPayload{
			ID:          item.Id,
			Title:       item.Snippet.Title,
			ChannelID:   item.Snippet.ChannelId,
			Description: item.Snippet.Description,
			Tags:        item.Snippet.Tags,
			RawDuration: "PT0S",
		}
		p.PublishedAt, _ = time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
			p.RawDuration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			p.ViewCount = int64(item.Statistics.ViewCount)
			p.LikeCount = int64(item.Statistics.LikeCount)
			p.CommentCount = int64(item.Statistics.CommentCount)
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

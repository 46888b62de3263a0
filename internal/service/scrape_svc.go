package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/youtube"
)

// FallbackCategory is assigned to videos ingested for a channel that has
// not been catalogued yet. Bulk ingestion must not be blocked by an
// unregistered channel.
const FallbackCategory = "Other"

// ErrChannelNotFound is returned by the bulk walk when the uploads
// playlist of the requested channel cannot be resolved.
var ErrChannelNotFound = errors.New("scrape: channel not found")

// Provider is the read surface of the video platform the scraper needs.
// Implemented by youtube.Client; faked in tests.
type Provider interface {
	FetchChannel(ctx context.Context, idOrUsername string) (*youtube.ChannelPayload, error)
	FetchUploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	ListPlaylistItems(ctx context.Context, playlistID string, pageSize int64, pageToken string) ([]string, string, error)
	FetchVideosBatch(ctx context.Context, videoIDs []string) ([]youtube.VideoPayload, error)
}

// ChannelStore is the channel-side persistence surface of the scraper.
// CategoryOf returns "" for channels not yet catalogued.
type ChannelStore interface {
	UpsertWithStats(ctx context.Context, ch model.Channel, cs model.ChannelStats) error
	CategoryOf(ctx context.Context, channelID string) (string, error)
}

// VideoStore is the video-side persistence surface of the scraper. The
// upsert must be atomic per video: either the video row and its stats row
// both persist, or neither does.
type VideoStore interface {
	UpsertWithStats(ctx context.Context, v model.Video, vs model.VideoStats) error
}

// ScrapeService pulls metadata from the provider into the catalog. All
// three entry points are synchronous: one scrape runs to completion (or
// failure) before control returns.
type ScrapeService struct {
	provider Provider
	channels ChannelStore
	videos   VideoStore
	cache    *CacheService
}

func NewScrapeService(provider Provider, channels ChannelStore, videos VideoStore, cache *CacheService) *ScrapeService {
	return &ScrapeService{provider: provider, channels: channels, videos: videos, cache: cache}
}

// ScrapeChannel fetches a channel by id or username and catalogues it.
// The category is fixed at first scrape; re-scrapes refresh the name and
// overwrite the stats.
func (s *ScrapeService) ScrapeChannel(ctx context.Context, idOrUsername, category string) (*model.ChannelSummary, error) {
	p, err := s.provider.FetchChannel(ctx, idOrUsername)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ch := model.Channel{
		ChannelID:   p.ID,
		ChannelName: p.Title,
		Category:    category,
		PublishedAt: p.PublishedAt,
	}
	cs := model.ChannelStats{
		ChannelID:        p.ID,
		SubscribersCount: p.Subscribers,
		TotalVideoCount:  p.VideoCount,
		TotalViewCount:   p.ViewCount,
		Description:      p.Description,
		ProfilePicture:   p.ProfilePicture,
		LastScrapedAt:    now,
	}
	if p.BannerImage != "" {
		cs.BannerImage = &p.BannerImage
	}

	if err := s.channels.UpsertWithStats(ctx, ch, cs); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateChannels(ctx, category); err != nil {
			log.Warn().Err(err).Msg("cache: channel invalidation failed")
		}
	}

	log.Info().Str("channel_id", p.ID).Str("category", category).Msg("channel scraped")
	return &model.ChannelSummary{
		ChannelID:   p.ID,
		ChannelName: p.Title,
		Subscribers: p.Subscribers,
		Videos:      p.VideoCount,
		Views:       p.ViewCount,
	}, nil
}

// ScrapeVideo fetches a single video by id and catalogues it under the
// given category. This is the standalone face of the same ingest routine
// the bulk walk uses; the two paths cannot diverge in upsert logic.
func (s *ScrapeService) ScrapeVideo(ctx context.Context, videoID, category string) (*model.VideoSummary, error) {
	payloads, err := s.provider.FetchVideosBatch(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: video %q", youtube.ErrNotFound, videoID)
	}
	return s.ingest(ctx, payloads[0], category)
}

// ScrapeChannelVideos walks a channel's uploads playlist page by page and
// ingests every video whose recomputed classification matches videoType.
// The walk is bounded by maxPages and maxVideosPerPage (clamped to the
// provider cap of 50) and stops early when a page comes back empty or no
// next-page token is returned.
//
// Any provider failure aborts the walk immediately, but per-video upserts
// already committed stay committed: the returned count is best-effort
// progress, not a commit boundary.
func (s *ScrapeService) ScrapeChannelVideos(ctx context.Context, channelID string, videoType model.FormatType, maxPages, maxVideosPerPage int) (int, error) {
	category, err := s.channels.CategoryOf(ctx, channelID)
	if err != nil {
		return 0, err
	}
	if category == "" {
		category = FallbackCategory
	}

	playlistID, err := s.provider.FetchUploadsPlaylistID(ctx, channelID)
	if err != nil {
		if errors.Is(err, youtube.ErrNotFound) {
			return 0, fmt.Errorf("%w: %q", ErrChannelNotFound, channelID)
		}
		return 0, err
	}

	pageSize := int64(maxVideosPerPage)
	if pageSize > youtube.MaxPageSize {
		pageSize = youtube.MaxPageSize
	}

	var (
		pageToken string
		scraped   int
	)
	for pages := 0; pages < maxPages; pages++ {
		videoIDs, nextToken, err := s.provider.ListPlaylistItems(ctx, playlistID, pageSize, pageToken)
		if err != nil {
			return scraped, err
		}
		if len(videoIDs) == 0 {
			break
		}

		payloads, err := s.provider.FetchVideosBatch(ctx, videoIDs)
		if err != nil {
			return scraped, err
		}

		for _, p := range payloads {
			seconds := youtube.ParseDuration(p.RawDuration)
			if youtube.Classify(seconds) != videoType {
				continue
			}
			if _, err := s.ingest(ctx, p, category); err != nil {
				return scraped, err
			}
			scraped++
		}

		pageToken = nextToken
		if pageToken == "" {
			break
		}
	}

	log.Info().
		Str("channel_id", channelID).
		Str("video_type", string(videoType)).
		Int("scraped", scraped).
		Msg("channel videos scraped")
	return scraped, nil
}

// ingest is the single upsert path shared by ScrapeVideo and the bulk
// walk. It classifies the payload by parsed duration and writes the video
// row and its stats row in one per-video transaction.
func (s *ScrapeService) ingest(ctx context.Context, p youtube.VideoPayload, category string) (*model.VideoSummary, error) {
	seconds := youtube.ParseDuration(p.RawDuration)
	format := youtube.Classify(seconds)

	v := model.Video{
		VideoID:       p.ID,
		ChannelID:     p.ChannelID,
		VideoTitle:    p.Title,
		PublishedAt:   p.PublishedAt,
		VideoCategory: category,
		FormatType:    format,
		Duration:      seconds,
	}
	vs := model.VideoStats{
		VideoID:       p.ID,
		ViewCount:     p.ViewCount,
		LikeCount:     p.LikeCount,
		CommentCount:  p.CommentCount,
		Description:   p.Description,
		Tags:          p.Tags,
		LastScrapedAt: time.Now().UTC(),
	}

	if err := s.videos.UpsertWithStats(ctx, v, vs); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateVideos(ctx, p.ChannelID); err != nil {
			log.Warn().Err(err).Msg("cache: video invalidation failed")
		}
	}

	return &model.VideoSummary{
		VideoID:   p.ID,
		Title:     p.Title,
		ChannelID: p.ChannelID,
		Duration:  seconds,
		Format:    format,
	}, nil
}

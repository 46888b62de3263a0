package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/repository"
)

type VideoService struct {
	repo  *repository.VideoRepo
	cache *CacheService
}

func NewVideoService(repo *repository.VideoRepo, cache *CacheService) *VideoService {
	return &VideoService{repo: repo, cache: cache}
}

// List returns videos with stats and channel names, optionally filtered
// to one channel. Cache-aside like the channel list.
func (s *VideoService) List(ctx context.Context, channelID string) ([]model.VideoRow, error) {
	if s.cache != nil {
		cached, err := s.cache.GetVideos(ctx, channelID)
		if err != nil {
			log.Warn().Err(err).Msg("cache: video list get error")
		} else if cached != nil {
			var rows []model.VideoRow
			if err := json.Unmarshal(cached, &rows); err == nil {
				return rows, nil
			}
		}
	}

	rows, err := s.repo.List(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.VideoRow{}
	}

	if s.cache != nil {
		if err := s.cache.SetVideos(ctx, channelID, rows); err != nil {
			log.Warn().Err(err).Msg("cache: video list set error")
		}
	}
	return rows, nil
}

// Delete removes a video and its stats row.
func (s *VideoService) Delete(ctx context.Context, videoID string) error {
	channelID, err := s.repo.ChannelOf(ctx, videoID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, videoID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateVideos(ctx, channelID); err != nil {
			log.Warn().Err(err).Msg("cache: video invalidation failed")
		}
	}

	log.Info().Str("video_id", videoID).Msg("video deleted")
	return nil
}

package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/repository"
)

type ChannelService struct {
	repo  *repository.ChannelRepo
	cache *CacheService
}

func NewChannelService(repo *repository.ChannelRepo, cache *CacheService) *ChannelService {
	return &ChannelService{repo: repo, cache: cache}
}

// List returns channels with their stats, optionally filtered by category.
// Cache-aside: check Redis first, fall back to the DB, then populate.
func (s *ChannelService) List(ctx context.Context, category string) ([]model.ChannelRow, error) {
	if s.cache != nil {
		cached, err := s.cache.GetChannels(ctx, category)
		if err != nil {
			log.Warn().Err(err).Msg("cache: channel list get error")
		} else if cached != nil {
			var rows []model.ChannelRow
			if err := json.Unmarshal(cached, &rows); err == nil {
				return rows, nil
			}
		}
	}

	rows, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.ChannelRow{}
	}

	if s.cache != nil {
		if err := s.cache.SetChannels(ctx, category, rows); err != nil {
			log.Warn().Err(err).Msg("cache: channel list set error")
		}
	}
	return rows, nil
}

// Delete removes a channel, its stats and (via cascade) its videos, then
// drops every cache entry the removal can affect.
func (s *ChannelService) Delete(ctx context.Context, channelID string) error {
	category, err := s.repo.CategoryOf(ctx, channelID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, channelID); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateChannels(ctx, category); err != nil {
			log.Warn().Err(err).Msg("cache: channel invalidation failed")
		}
		if err := s.cache.InvalidateVideos(ctx, channelID); err != nil {
			log.Warn().Err(err).Msg("cache: video invalidation failed")
		}
	}

	log.Info().Str("channel_id", channelID).Msg("channel deleted")
	return nil
}

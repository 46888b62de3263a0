package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/repository"
)

type StatsService struct {
	repo  *repository.StatsRepo
	cache *CacheService
}

func NewStatsService(repo *repository.StatsRepo, cache *CacheService) *StatsService {
	return &StatsService{repo: repo, cache: cache}
}

// GetStats returns the aggregate catalog counters for the dashboard.
func (s *StatsService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetStats(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("cache: stats get error")
		} else if cached != nil {
			var stats model.StatsResponse
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, stats); err != nil {
			log.Warn().Err(err).Msg("cache: stats set error")
		}
	}
	return stats, nil
}

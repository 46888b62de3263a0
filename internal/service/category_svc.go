package service

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/repository"
)

// CategoryService serves the closed category enumeration maintained by
// the store. Category values arriving from callers are treated as
// untrusted and checked against this list before reaching a query.
type CategoryService struct {
	repo  *repository.CategoryRepo
	cache *CacheService
}

func NewCategoryService(repo *repository.CategoryRepo, cache *CacheService) *CategoryService {
	return &CategoryService{repo: repo, cache: cache}
}

// List returns all category labels in enum order.
func (s *CategoryService) List(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCategories(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("cache: categories get error")
		} else if cached != nil {
			var categories []string
			if err := json.Unmarshal(cached, &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCategories(ctx, categories); err != nil {
			log.Warn().Err(err).Msg("cache: categories set error")
		}
	}
	return categories, nil
}

// Valid reports whether category is one of the enumeration labels.
func (s *CategoryService) Valid(ctx context.Context, category string) (bool, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(categories, category), nil
}

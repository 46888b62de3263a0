package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
)

type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// GetStats aggregates the catalog counters shown on the dashboard.
func (r *StatsRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	stats := &model.StatsResponse{
		ChannelsByCategory: make(map[string]int64),
	}

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM channels),
			(SELECT COUNT(*) FROM videos),
			(SELECT COUNT(*) FROM videos WHERE format_type = 'shorts')`

	err := r.pool.QueryRow(ctx, countsQuery).Scan(
		&stats.TotalChannels, &stats.TotalVideos, &stats.TotalShorts,
	)
	if err != nil {
		return nil, storeErr("aggregate counts", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM channels GROUP BY category`)
	if err != nil {
		return nil, storeErr("count channels by category", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, storeErr("scan category count", err)
		}
		stats.ChannelsByCategory[category] = count
	}
	return stats, storeErr("count channels by category", rows.Err())
}

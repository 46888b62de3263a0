package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepo exposes the closed set of channel categories. The labels
// live in the video_category_enum Postgres type; the ingestion core treats
// them as an opaque list and hardcodes nothing.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List returns all category labels in enum declaration order.
func (r *CategoryRepo) List(ctx context.Context) ([]string, error) {
	query := `
		SELECT enumlabel
		FROM pg_enum
		JOIN pg_type ON pg_enum.enumtypid = pg_type.oid
		WHERE pg_type.typname = 'video_category_enum'
		ORDER BY enumsortorder`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, storeErr("scan category", err)
		}
		categories = append(categories, label)
	}
	return categories, storeErr("list categories", rows.Err())
}

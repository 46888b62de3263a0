package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
)

type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

// UpsertWithStats persists one channel scrape atomically: the channel row
// is inserted on first sight (name refreshed on re-scrape, category never
// touched after creation) and the stats row is fully overwritten. Either
// both writes commit or neither does.
func (r *ChannelRepo) UpsertWithStats(ctx context.Context, ch model.Channel, cs model.ChannelStats) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin channel upsert", err)
	}
	defer tx.Rollback(ctx)

	channelQuery := `
		INSERT INTO channels (channel_id, channel_name, category, published_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (channel_id)
		DO UPDATE SET channel_name = EXCLUDED.channel_name`

	_, err = tx.Exec(ctx, channelQuery, ch.ChannelID, ch.ChannelName, ch.Category, ch.PublishedAt)
	if err != nil {
		return storeErr("upsert channel", err)
	}

	statsQuery := `
		INSERT INTO channel_stats (
			channel_id, subscribers_count, total_video_count, total_view_count,
			description, profile_picture, banner_image, last_scraped_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (channel_id)
		DO UPDATE SET
			subscribers_count = EXCLUDED.subscribers_count,
			total_video_count = EXCLUDED.total_video_count,
			total_view_count  = EXCLUDED.total_view_count,
			description       = EXCLUDED.description,
			profile_picture   = EXCLUDED.profile_picture,
			banner_image      = EXCLUDED.banner_image,
			last_scraped_at   = EXCLUDED.last_scraped_at`

	_, err = tx.Exec(ctx, statsQuery,
		cs.ChannelID, cs.SubscribersCount, cs.TotalVideoCount, cs.TotalViewCount,
		cs.Description, cs.ProfilePicture, cs.BannerImage, cs.LastScrapedAt,
	)
	if err != nil {
		return storeErr("upsert channel stats", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit channel upsert", err)
	}
	return nil
}

// CategoryOf returns the stored category for a channel, or "" when the
// channel has not been catalogued yet.
func (r *ChannelRepo) CategoryOf(ctx context.Context, channelID string) (string, error) {
	var category string
	err := r.pool.QueryRow(ctx,
		`SELECT category FROM channels WHERE channel_id = $1`, channelID,
	).Scan(&category)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", storeErr("lookup channel category", err)
	}
	return category, nil
}

// List returns all channels joined with their stats, sorted by subscriber
// count descending. category narrows the result; "" means all categories.
// The filter is always bound as a parameter, never spliced into the query.
func (r *ChannelRepo) List(ctx context.Context, category string) ([]model.ChannelRow, error) {
	query := `
		SELECT c.channel_id, c.channel_name, c.category, c.published_at,
		       cs.subscribers_count, cs.total_video_count, cs.total_view_count,
		       cs.profile_picture
		FROM channels c
		LEFT JOIN channel_stats cs ON c.channel_id = cs.channel_id
		WHERE $1 = '' OR c.category::text = $1
		ORDER BY cs.subscribers_count DESC NULLS LAST`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, storeErr("list channels", err)
	}
	defer rows.Close()

	var channels []model.ChannelRow
	for rows.Next() {
		var ch model.ChannelRow
		err := rows.Scan(
			&ch.ChannelID, &ch.ChannelName, &ch.Category, &ch.PublishedAt,
			&ch.SubscribersCount, &ch.TotalVideoCount, &ch.TotalViewCount,
			&ch.ProfilePicture,
		)
		if err != nil {
			return nil, storeErr("scan channel row", err)
		}
		channels = append(channels, ch)
	}
	return channels, storeErr("list channels", rows.Err())
}

// Delete removes a channel and its stats row. Videos referencing the
// channel go with it via the FK cascade.
func (r *ChannelRepo) Delete(ctx context.Context, channelID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin channel delete", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM channel_stats WHERE channel_id = $1`, channelID); err != nil {
		return storeErr("delete channel stats", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM channels WHERE channel_id = $1`, channelID)
	if err != nil {
		return storeErr("delete channel", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit channel delete", err)
	}
	return nil
}

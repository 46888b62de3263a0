package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// UpsertWithStats persists one video scrape atomically. On first sight the
// full video row is inserted; on re-scrape only the mutable fields (title,
// category, format, duration) are refreshed — channel_id is fixed at
// insert and deliberately absent from the update. The stats row is fully
// overwritten. Both writes share one transaction.
func (r *VideoRepo) UpsertWithStats(ctx context.Context, v model.Video, vs model.VideoStats) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin video upsert", err)
	}
	defer tx.Rollback(ctx)

	videoQuery := `
		INSERT INTO videos (
			video_id, channel_id, video_title, published_at,
			video_category, format_type, duration
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (video_id)
		DO UPDATE SET
			video_title    = EXCLUDED.video_title,
			video_category = EXCLUDED.video_category,
			format_type    = EXCLUDED.format_type,
			duration       = EXCLUDED.duration`

	_, err = tx.Exec(ctx, videoQuery,
		v.VideoID, v.ChannelID, v.VideoTitle, v.PublishedAt,
		v.VideoCategory, string(v.FormatType), v.Duration,
	)
	if err != nil {
		return storeErr("upsert video", err)
	}

	statsQuery := `
		INSERT INTO video_stats (
			video_id, view_count, like_count, comment_count,
			description, tags, last_scraped_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (video_id)
		DO UPDATE SET
			view_count      = EXCLUDED.view_count,
			like_count      = EXCLUDED.like_count,
			comment_count   = EXCLUDED.comment_count,
			description     = EXCLUDED.description,
			tags            = EXCLUDED.tags,
			last_scraped_at = EXCLUDED.last_scraped_at`

	_, err = tx.Exec(ctx, statsQuery,
		vs.VideoID, vs.ViewCount, vs.LikeCount, vs.CommentCount,
		vs.Description, vs.Tags, vs.LastScrapedAt,
	)
	if err != nil {
		return storeErr("upsert video stats", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit video upsert", err)
	}
	return nil
}

// List returns videos joined with their stats and owning channel.
// channelID narrows the result to one channel; "" means all. Newest first.
func (r *VideoRepo) List(ctx context.Context, channelID string) ([]model.VideoRow, error) {
	query := `
		SELECT v.video_id, v.video_title, v.published_at, c.channel_name,
		       v.video_category, v.format_type, v.duration,
		       vs.view_count, vs.like_count, vs.comment_count
		FROM videos v
		LEFT JOIN video_stats vs ON v.video_id = vs.video_id
		LEFT JOIN channels c ON v.channel_id = c.channel_id
		WHERE $1 = '' OR v.channel_id = $1
		ORDER BY v.published_at DESC`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, storeErr("list videos", err)
	}
	defer rows.Close()

	var videos []model.VideoRow
	for rows.Next() {
		var v model.VideoRow
		err := rows.Scan(
			&v.VideoID, &v.VideoTitle, &v.PublishedAt, &v.ChannelName,
			&v.VideoCategory, &v.FormatType, &v.Duration,
			&v.ViewCount, &v.LikeCount, &v.CommentCount,
		)
		if err != nil {
			return nil, storeErr("scan video row", err)
		}
		videos = append(videos, v)
	}
	return videos, storeErr("list videos", rows.Err())
}

// ChannelOf returns the owning channel id of a stored video, or "" when
// the video is not catalogued.
func (r *VideoRepo) ChannelOf(ctx context.Context, videoID string) (string, error) {
	var channelID string
	err := r.pool.QueryRow(ctx,
		`SELECT channel_id FROM videos WHERE video_id = $1`, videoID,
	).Scan(&channelID)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", storeErr("lookup video channel", err)
	}
	return channelID, nil
}

// Delete removes a video and its stats row.
func (r *VideoRepo) Delete(ctx context.Context, videoID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin video delete", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM video_stats WHERE video_id = $1`, videoID); err != nil {
		return storeErr("delete video stats", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM videos WHERE video_id = $1`, videoID)
	if err != nil {
		return storeErr("delete video", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit video delete", err)
	}
	return nil
}

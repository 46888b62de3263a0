package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache TTLs. List reads are cheap to rebuild, so they expire quickly;
// the category enumeration only changes with a migration.
const (
	ListCacheTTL     = 5 * time.Minute
	CategoryCacheTTL = 1 * time.Hour
	StatsCacheTTL    = 5 * time.Minute
)

// CacheService is a Redis cache-aside layer for the read endpoints
// (channel lists, video lists, categories, dashboard stats). Every write
// path invalidates the keys it can affect.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService connects to Redis. An empty URL or a failed connection
// degrades to a nil client, turning every cache operation into a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client for health checks. May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

func (c *CacheService) get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *CacheService) set(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *CacheService) del(ctx context.Context, keys ...string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// GetChannels returns the cached channel list for a category filter
// ("" = all). Nil means cache miss or caching disabled.
func (c *CacheService) GetChannels(ctx context.Context, category string) ([]byte, error) {
	return c.get(ctx, channelsKey(category))
}

func (c *CacheService) SetChannels(ctx context.Context, category string, v interface{}) error {
	return c.set(ctx, channelsKey(category), v, ListCacheTTL)
}

// InvalidateChannels drops the all-channels list, the list for the given
// category, and the dashboard stats.
func (c *CacheService) InvalidateChannels(ctx context.Context, category string) error {
	keys := []string{channelsKey(""), statsKey}
	if category != "" {
		keys = append(keys, channelsKey(category))
	}
	return c.del(ctx, keys...)
}

func (c *CacheService) GetVideos(ctx context.Context, channelID string) ([]byte, error) {
	return c.get(ctx, videosKey(channelID))
}

func (c *CacheService) SetVideos(ctx context.Context, channelID string, v interface{}) error {
	return c.set(ctx, videosKey(channelID), v, ListCacheTTL)
}

// InvalidateVideos drops the all-videos list, the list for the given
// channel, and the dashboard stats.
func (c *CacheService) InvalidateVideos(ctx context.Context, channelID string) error {
	keys := []string{videosKey(""), statsKey}
	if channelID != "" {
		keys = append(keys, videosKey(channelID))
	}
	return c.del(ctx, keys...)
}

func (c *CacheService) GetCategories(ctx context.Context) ([]byte, error) {
	return c.get(ctx, categoriesKey)
}

func (c *CacheService) SetCategories(ctx context.Context, v interface{}) error {
	return c.set(ctx, categoriesKey, v, CategoryCacheTTL)
}

func (c *CacheService) GetStats(ctx context.Context) ([]byte, error) {
	return c.get(ctx, statsKey)
}

func (c *CacheService) SetStats(ctx context.Context, v interface{}) error {
	return c.set(ctx, statsKey, v, StatsCacheTTL)
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

const (
	categoriesKey = "categories"
	statsKey      = "stats"
)

func channelsKey(category string) string {
	if category == "" {
		return "channels:all"
	}
	return fmt.Sprintf("channels:%s", category)
}

func videosKey(channelID string) string {
	if channelID == "" {
		return "videos:all"
	}
	return fmt.Sprintf("videos:%s", channelID)
}

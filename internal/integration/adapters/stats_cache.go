package adapters

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// completedTotalKey is the cache key for the completed-total statistic.
const completedTotalKey = "stats:completed_total"

// redisStatsCache implements the adapter.StatsCache interface on Redis.
type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatsCache creates a new Redis-backed statistics cache.
func NewRedisStatsCache(client *redis.Client, ttl time.Duration) adapter.StatsCache {
	return &redisStatsCache{
		client: client,
		ttl:    ttl,
	}
}

// GetCompletedTotal returns the cached total and whether it was present.
func (c *redisStatsCache) GetCompletedTotal(ctx context.Context) (int64, bool, error) {
	value, err := c.client.Get(ctx, completedTotalKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	total, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

// SetCompletedTotal stores the total with the configured TTL.
func (c *redisStatsCache) SetCompletedTotal(ctx context.Context, total int64) error {
	return c.client.Set(ctx, completedTotalKey, strconv.FormatInt(total, 10), c.ttl).Err()
}

// Invalidate drops the cached statistics.
func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, completedTotalKey).Err()
}

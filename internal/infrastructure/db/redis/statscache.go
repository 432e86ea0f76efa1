package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsTTL = 5 * time.Minute

// StatsCache caches the per-user statistics aggregate in Redis.
// Key format: stats:<user_id>
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached payload, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context, userID string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}
	return payload, nil
}

// Set stores the payload with a bounded TTL so stale entries age out even if
// an invalidation is ever missed.
func (c *StatsCache) Set(ctx context.Context, userID string, payload []byte) error {
	return c.client.Set(ctx, c.key(userID), payload, statsTTL).Err()
}

// Invalidate drops the cached aggregate after a sleep-record mutation.
func (c *StatsCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *StatsCache) key(userID string) string {
	return "stats:" + userID
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peopledesk/users-api/internal/core/ports"
)

const statsKey = "users:stats"

const defaultStatsTTL = time.Minute

// StatsCache is the Redis-backed read-through cache for the aggregate stats
// endpoint. Entries are invalidated on every successful mutation, so the TTL
// is only a backstop against missed invalidations.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.StatsCache = (*StatsCache)(nil)

// NewStatsCache wraps the given Redis client. A non-positive ttl falls back
// to one minute.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached stats, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.UserStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *ports.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKey).Err()
}

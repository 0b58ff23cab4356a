package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

const statsKey = "dashboard:stats"

// StatsCache caches the dashboard aggregate in Redis. It fails open: any
// cache error is logged and treated as a miss, never surfaced to the
// caller. Authentication data is never cached here.
type StatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, log zerolog.Logger) *StatsCache {
	return &StatsCache{client: client, log: log}
}

func (c *StatsCache) Get(ctx context.Context) (*domain.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("stats cache read failed")
		}
		return nil, false
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warn().Err(err).Msg("stats cache entry corrupt")
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) {
	raw, err := json.Marshal(stats)
	if err != nil {
		c.log.Warn().Err(err).Msg("stats cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, statsKey, raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("stats cache write failed")
	}
}

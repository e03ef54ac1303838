package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

const viewCacheKey = "portfolio:public_view"

// redisViewCache keeps the assembled public view in Redis for a short TTL.
// Every Redis failure is treated as a cache miss; the page is always
// servable from Postgres alone.
type redisViewCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisViewCache(client *redis.Client, ttl time.Duration, log logger.Logger) site.ViewCache {
	return &redisViewCache{client: client, ttl: ttl, logger: log}
}

func (c *redisViewCache) Get(ctx context.Context) (*site.View, bool) {
	raw, err := c.client.Get(ctx, viewCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("View cache read failed", zap.Error(err))
		}
		return nil, false
	}

	v := &site.View{}
	if err := json.Unmarshal(raw, v); err != nil {
		c.logger.Warn("View cache held invalid JSON, dropping", zap.Error(err))
		c.client.Del(ctx, viewCacheKey)
		return nil, false
	}
	return v, true
}

func (c *redisViewCache) Set(ctx context.Context, v *site.View) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("View cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, viewCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("View cache write failed", zap.Error(err))
	}
}

func (c *redisViewCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, viewCacheKey).Err(); err != nil {
		c.logger.Warn("View cache invalidation failed", zap.Error(err))
	}
}

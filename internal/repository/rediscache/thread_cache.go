package rediscache

import (
	"context"
	"time"

	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/pkg/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat:thread:"

// ThreadCache shares the thread lookup between instances. Redis errors are
// logged and treated as a miss so chat falls back to the database.
type ThreadCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

var _ store.ThreadCache = (*ThreadCache)(nil)

func NewThreadCache(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *ThreadCache {
	return &ThreadCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *ThreadCache) Get(ctx context.Context, threadID string) (uuid.UUID, bool) {
	raw, err := c.rdb.Get(ctx, keyPrefix+threadID).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("CACHE", "Thread cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *ThreadCache) Set(ctx context.Context, threadID string, conversationID uuid.UUID) {
	if err := c.rdb.Set(ctx, keyPrefix+threadID, conversationID.String(), c.ttl).Err(); err != nil {
		c.logger.Warn("CACHE", "Thread cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func (c *ThreadCache) Delete(ctx context.Context, threadID string) {
	if err := c.rdb.Del(ctx, keyPrefix+threadID).Err(); err != nil {
		c.logger.Warn("CACHE", "Thread cache delete failed", map[string]interface{}{"error": err.Error()})
	}
}

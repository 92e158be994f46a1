package memory

import (
	"context"
	"time"

	"roofing-site-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ThreadCache struct {
	cache *cache.Cache
}

var _ store.ThreadCache = (*ThreadCache)(nil)

// NewThreadCache keeps entries for ttl and purges expired items every 10 minutes.
func NewThreadCache(ttl time.Duration) *ThreadCache {
	return &ThreadCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *ThreadCache) Get(_ context.Context, threadID string) (uuid.UUID, bool) {
	if x, found := r.cache.Get(threadID); found {
		return x.(uuid.UUID), true
	}
	return uuid.Nil, false
}

func (r *ThreadCache) Set(_ context.Context, threadID string, conversationID uuid.UUID) {
	r.cache.Set(threadID, conversationID, cache.DefaultExpiration)
}

func (r *ThreadCache) Delete(_ context.Context, threadID string) {
	r.cache.Delete(threadID)
}

package adapters

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nikkei_backend/internal/feature/news/domain/entity"
	"nikkei_backend/internal/feature/news/usecase"
)

// DefaultTTL keeps headlines fresh enough while sparing the feed.
const DefaultTTL = 600 * time.Second

type cacheEntry struct {
	items     []entity.Item
	fetchedAt time.Time
}

// cachedSource decorates a NewsSource with an in-memory TTL cache.
// Within the TTL a second request for the same code never refetches;
// after a failed refresh a stale entry is served instead of the error.
type cachedSource struct {
	inner usecase.NewsSource
	ttl   time.Duration
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

var _ usecase.NewsSource = (*cachedSource)(nil)

// NewCachedSource wraps inner with a TTL cache. A non-positive ttl
// falls back to DefaultTTL.
func NewCachedSource(inner usecase.NewsSource, ttl time.Duration) *cachedSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &cachedSource{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]cacheEntry{},
	}
}

// Fetch serves from cache within the TTL, refreshing through the inner
// source otherwise.
func (c *cachedSource) Fetch(ctx context.Context, code string) ([]entity.Item, error) {
	now := c.now()

	c.mu.RLock()
	entry, ok := c.entries[code]
	c.mu.RUnlock()
	if ok && now.Sub(entry.fetchedAt) < c.ttl {
		return entry.items, nil
	}

	items, err := c.inner.Fetch(ctx, code)
	if err != nil {
		if ok {
			slog.Warn("news refresh failed, serving stale headlines", "code", code, "error", err)
			return entry.items, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[code] = cacheEntry{items: items, fetchedAt: now}
	c.mu.Unlock()
	return items, nil
}

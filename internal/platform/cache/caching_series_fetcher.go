// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"nikkei_backend/internal/feature/candles/domain/entity"
	"nikkei_backend/internal/feature/candles/usecase"
)

// CachingSeriesFetcher decorates a RemoteFetcher with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying fetcher, so stooq's daily quota is spent once
// per symbol per trading day.
type CachingSeriesFetcher struct {
	inner     usecase.RemoteFetcher
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingSeriesFetcher decorates a RemoteFetcher with Redis caching.
// If ttl is 0, it defaults to the time remaining until the next 08:00 JST.
// If namespace is empty, it uses "series".
func NewCachingSeriesFetcher(rdb *redis.Client, ttl time.Duration, inner usecase.RemoteFetcher, namespace string) *CachingSeriesFetcher {
	if namespace == "" {
		namespace = "series"
	}
	return &CachingSeriesFetcher{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FetchDaily retrieves candles, checking cache first then falling back to the
// upstream fetcher.
func (c *CachingSeriesFetcher) FetchDaily(ctx context.Context, code string) ([]entity.Candle, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FetchDaily(ctx, code)
	}

	key := c.cacheKey(code)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.FetchDaily(ctx, code)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.effectiveTTL()).Err()
	}

	return out, nil
}

// effectiveTTL resolves the configured TTL, deferring to the next morning
// refresh window when unset.
func (c *CachingSeriesFetcher) effectiveTTL() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNext8AM(time.Now())
}

// cacheKey generates a cache key for a daily series.
func (c *CachingSeriesFetcher) cacheKey(code string) string {
	return fmt.Sprintf("%s:%s:d", c.namespace, safe(code))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

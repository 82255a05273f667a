// Package service sits between the HTTP boundary and the aggregation
// engine, adding result caching on top of the pure query pipelines.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hoopsight/courtside/internal/cache"
)

const cacheKeyPrefix = "courtside:"

// fetchCached returns the cached result for key when present, otherwise
// computes, caches and returns it. Cache failures are logged and ignored:
// the engine recomputes, it never serves a degraded answer. Errors from
// compute are never cached. A nil cache disables caching entirely.
func fetchCached[T any](ctx context.Context, c *cache.RedisCache, ttl time.Duration, key string, compute func() (*T, error)) (*T, error) {
	if c == nil {
		return compute()
	}

	key = cacheKeyPrefix + key
	if raw, err := c.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		log.Warn("Dropping undecodable cache entry", "key", key)
		if err := c.Delete(ctx, key); err != nil {
			log.Warn("Failed to drop cache entry", "key", key, "error", err)
		}
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		log.Warn("Failed to marshal result for cache", "key", key, "error", err)
		return result, nil
	}
	if err := c.Set(ctx, key, raw, ttl); err != nil {
		log.Warn("Failed to cache result", "key", key, "error", err)
	}

	return result, nil
}

// Package cache implements the cache-aside discipline used by the analytics
// and redirect read paths: check Redis first, compute and populate on miss,
// delete on writes that would make cached data stale. Caching here is an
// optimization only; a Redis failure degrades to a forced miss, never to a
// request error.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redisc "github.com/shortspace/core/internal/pkg/redis"
)

// Key categories. The format "{category}:{identifier}" is shared with any
// pre-existing cache contents and must not change.
const (
	CategoryURLAnalytics     = "url-analytics"
	CategoryTopicAnalytics   = "topic-analytics"
	CategoryOverallAnalytics = "overall-analytics"
	CategoryURLRedirect      = "url-redirect"
)

const (
	// AnalyticsTTL bounds staleness of computed analytics reports.
	AnalyticsTTL = 300 * time.Second
	// RedirectTTL fronts the resolve-and-increment redirect path.
	RedirectTTL = time.Hour
)

// Key derives the namespaced cache key for a category/identifier pair.
func Key(category, identifier string) string {
	return category + ":" + identifier
}

// GetOrSet returns the cached value for key, or invokes compute, stores the
// result with the given TTL and returns it. Entries are JSON blobs. Redis
// errors on either side are ignored: a failed read behaves like a miss and a
// failed write just means the next call recomputes.
//
// Concurrent misses for the same key may both compute and both store;
// last write wins.
func GetOrSet[T any](ctx context.Context, rc *redisc.Client, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	if rc != nil {
		if raw, ok, err := rc.GetBytes(ctx, key); err == nil && ok {
			var cached T
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			// undecodable entry: recompute and overwrite below
		}
	}

	val, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if rc != nil {
		if raw, err := json.Marshal(val); err == nil {
			_ = rc.Set(ctx, key, raw, ttl)
		}
	}
	return val, nil
}

// Invalidate removes the given keys. A write path calls this before
// returning so the next read observes the new state.
func Invalidate(ctx context.Context, rc *redisc.Client, keys ...string) error {
	if rc == nil || len(keys) == 0 {
		return nil
	}
	return rc.Del(ctx, keys...)
}

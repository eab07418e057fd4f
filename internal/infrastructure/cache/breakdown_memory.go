// Package cache provides breakdown cache backends behind the usecase
// cache port: an in-process TTL store for single-instance deployments and
// a Redis store for shared ones.
package cache

import (
	"context"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	platformcache "github.com/fplytics/fpl-insights/internal/platform/cache"
)

// MemoryBreakdownCache adapts the in-process TTL store to the typed
// breakdown cache port.
type MemoryBreakdownCache struct {
	store *platformcache.Store
}

func NewMemoryBreakdownCache(store *platformcache.Store) *MemoryBreakdownCache {
	return &MemoryBreakdownCache{store: store}
}

func (c *MemoryBreakdownCache) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (attribution.Breakdown, error)) (attribution.Breakdown, error) {
	value, err := c.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return attribution.Breakdown{}, err
	}

	breakdown, ok := value.(attribution.Breakdown)
	if !ok {
		// A foreign value under this key means the keyspace was misused;
		// recompute rather than serve garbage.
		return loader(ctx)
	}

	return breakdown, nil
}

package cache

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/platform/resilience"
)

// RedisBreakdownCache stores computed breakdowns as JSON with a TTL.
// Concurrent misses for the same key collapse into one computation per
// process; Redis itself deduplicates across instances only by virtue of
// the short window between compute and set.
type RedisBreakdownCache struct {
	client *redis.Client
	ttl    time.Duration
	flight resilience.SingleFlight
}

func NewRedisBreakdownCache(client *redis.Client, ttl time.Duration) *RedisBreakdownCache {
	return &RedisBreakdownCache{client: client, ttl: ttl}
}

func (c *RedisBreakdownCache) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (attribution.Breakdown, error)) (attribution.Breakdown, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached attribution.Breakdown
		if decodeErr := sonic.Unmarshal(raw, &cached); decodeErr == nil {
			return cached, nil
		}
		// Undecodable payloads are treated as a miss and overwritten.
	} else if err != redis.Nil {
		return attribution.Breakdown{}, fmt.Errorf("redis get %s: %w", key, err)
	}

	value, err, _ := c.flight.Do(key, func() (any, error) {
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return attribution.Breakdown{}, loadErr
		}

		encoded, encodeErr := sonic.Marshal(loaded)
		if encodeErr != nil {
			return attribution.Breakdown{}, fmt.Errorf("encode breakdown for %s: %w", key, encodeErr)
		}
		if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			return attribution.Breakdown{}, fmt.Errorf("redis set %s: %w", key, setErr)
		}

		return loaded, nil
	})
	if err != nil {
		return attribution.Breakdown{}, err
	}

	return value.(attribution.Breakdown), nil
}

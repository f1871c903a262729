package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gti/resource-planner/internal/utilization"
)

// RedisCache is a PayloadCache shared between server instances. Entries are
// namespaced by a generation counter; Invalidate bumps the counter so every
// older entry becomes unreachable and ages out through its TTL.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) generationKey() string {
	return c.prefix + ":generation"
}

func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	return readGeneration(ctx, c.client, c.generationKey())
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, cmd stringGetter, key string) (int64, error) {
	gen, err := cmd.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

func (c *RedisCache) entryKey(gen int64, key string) string {
	return fmt.Sprintf("%s:g%d:%s", c.prefix, gen, key)
}

func (c *RedisCache) Get(ctx context.Context, key string) (utilization.AlertPayload, bool, error) {
	var payload utilization.AlertPayload

	gen, err := c.Generation(ctx)
	if err != nil {
		return payload, false, err
	}

	raw, err := c.client.Get(ctx, c.entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return payload, false, nil
	}
	if err != nil {
		return payload, false, fmt.Errorf("failed to read cached payload: %w", err)
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, false, fmt.Errorf("failed to decode cached payload: %w", err)
	}
	return payload, true, nil
}

// Set writes under WATCH on the generation counter, so a concurrent
// Invalidate aborts the write instead of racing it.
func (c *RedisCache) Set(ctx context.Context, key string, gen int64, payload utilization.AlertPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, c.generationKey())
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.entryKey(gen, key), raw, c.ttl)
			return nil
		})
		return err
	}, c.generationKey())

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to store payload: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.generationKey()).Err(); err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}
	return nil
}

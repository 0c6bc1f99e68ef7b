package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores each device namespace as a hash under "storefront:device:<id>".
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client. A positive ttl expires idle device namespaces.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func deviceKey(device string) string {
	return "storefront:device:" + device
}

func (r *Redis) Get(ctx context.Context, device, key string) (string, error) {
	v, err := r.client.HGet(ctx, deviceKey(device), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis hget %s: %w", key, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, device, key, value string) error {
	k := deviceKey(device)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	if r.ttl > 0 {
		pipe.Expire(ctx, k, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Remove(ctx context.Context, device string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.HDel(ctx, deviceKey(device), keys...).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

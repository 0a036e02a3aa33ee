package tokenstore

import (
	"context"
	"time"

	"autoparts/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores sessions in redis so every replica sees them.
type RedisBackend struct {
	client redis.UniversalClient
}

// NewRedisBackend wraps a connected client.
func NewRedisBackend(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	value, err := b.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}

	return errors.Wrapf(b.client.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

func (b *RedisBackend) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(b.client.Del(ctx, keys...).Err(), "redis del")
}

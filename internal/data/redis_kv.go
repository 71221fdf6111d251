package data

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisKV stores each key as a plain Redis string without expiry.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	return errors.Wrapf(err, "redis set %s", key)
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	return errors.Wrapf(err, "redis del %s", key)
}

func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}

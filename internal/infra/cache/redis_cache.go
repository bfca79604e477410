// Package cache provides the catalog cache backends.
package cache

import (
	"context"
	"time"

	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

func newRedisCache(addr, password string, db int) *redisCache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *redisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "failed to connect to Redis")
	}

	return nil
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return val, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.WithStack(r.client.Set(ctx, key, value, ttl).Err())
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	return errors.WithStack(r.client.Del(ctx, key).Err())
}

func (r *redisCache) Close() error {
	return r.client.Close()
}

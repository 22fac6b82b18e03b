package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

type RedisCache struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get decodes the JSON stored under key into dest, returning
// shared.ErrCacheMiss when the key is absent.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return shared.ErrCacheMiss
		}
		return errs.Wrapf(err, "redis get %s", key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errs.Wrapf(err, "decode cached %s", key)
	}
	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "encode %s for cache", key)
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis set %s", key)
	}
	return nil
}

// DeletePattern removes every key matching pattern. Deleting while the
// cursor is live can make SCAN skip keys, so matches are collected first.
func (c *RedisCache) DeletePattern(ctx context.Context, pattern string) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrapf(err, "redis scan %s", pattern)
	}
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		if err := c.client.Unlink(ctx, keys[start:end]...).Err(); err != nil {
			return errs.Wrapf(err, "redis unlink %s", pattern)
		}
	}
	return nil
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keySetting = "setting:"

// SettingCache caches setting values in Redis. Only settings are cached:
// CRUD entities are always read from the database.
type SettingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSettingCache returns a new SettingCache.
func NewSettingCache(rdb *redis.Client, ttl time.Duration) *SettingCache {
	return &SettingCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached value for key. ok is false on miss.
func (c *SettingCache) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	v, err := c.rdb.Get(ctx, keySetting+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores the value for key with the configured TTL.
func (c *SettingCache) Set(ctx context.Context, key, value string) error {
	return c.rdb.Set(ctx, keySetting+key, value, c.ttl).Err()
}

// Invalidate drops the cached value for key (cache invalidation on write).
func (c *SettingCache) Invalidate(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, keySetting+key).Err()
}

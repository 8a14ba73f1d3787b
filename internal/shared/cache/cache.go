package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DocumentCache stores rendered documents by content key.
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, doc []byte) error
}

// RedisCache implements DocumentCache on Redis. Entries live under
// "<prefix><key>" and expire after ttl.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache. Prefix may be empty.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "resume:doc:"
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, doc []byte) error {
	return c.client.Set(ctx, c.prefix+key, doc, c.ttl).Err()
}

var _ DocumentCache = (*RedisCache)(nil)

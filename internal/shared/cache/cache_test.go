package cache

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "test:doc:", ttl), m
}

func TestRedisCacheSetGet(t *testing.T) {
	c, m := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "html:abc")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "html:abc", []byte("<html></html>")))
	require.True(t, m.Exists("test:doc:html:abc"))

	got, ok, err := c.Get(ctx, "html:abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "<html></html>", string(got))
}

func TestRedisCacheExpires(t *testing.T) {
	c, m := newTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("doc")))
	m.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCacheDefaults(t *testing.T) {
	c := NewRedisCache(nil, "", 0)
	require.Equal(t, "resume:doc:", c.prefix)
	require.Equal(t, 10*time.Minute, c.ttl)
}

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New(true)
	etag := c.Set("logo:Duke", []byte("png"), TTLSession)

	data, got, ok := c.Get("logo:Duke")
	require.True(t, ok)
	assert.Equal(t, []byte("png"), data)
	assert.Equal(t, etag, got)
	assert.Equal(t, ComputeETag([]byte("png")), etag)

	_, _, ok = c.Get("logo:Kansas")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, _, ok := c.Get("k")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["expired_keys"])

	c.evict()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCache_Disabled(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), TTLSession)
	assert.NotEmpty(t, etag)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
	_, ok = c.Load(context.Background(), "k")
	assert.False(t, ok)
}

func TestCache_Store(t *testing.T) {
	var s Store = New(true)
	s.Save(context.Background(), "url", []byte("body"), time.Minute)
	data, ok := s.Load(context.Background(), "url")
	require.True(t, ok)
	assert.Equal(t, "body", string(data))
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()
	s, err := NewRedisStore(ctx, url, nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.HealthCheck(ctx))
	s.Save(ctx, "test:key", []byte("body"), time.Minute)
	data, ok := s.Load(ctx, "test:key")
	require.True(t, ok)
	assert.Equal(t, "body", string(data))

	_, ok = s.Load(ctx, "test:missing")
	assert.False(t, ok)
}

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "not a url", nil)
	assert.Error(t, err)
}

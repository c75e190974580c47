package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_FixedWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	now := time.Date(2024, 5, 1, 10, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ctx := context.Background()
	policy := Policy{Requests: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "login:1.2.3.4", policy)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "login:1.2.3.4", policy)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 50*time.Second, res.RetryAfter)

	now = now.Add(time.Minute)
	res, err = limiter.Allow(ctx, "login:1.2.3.4", policy)
	require.NoError(t, err)
	assert.True(t, res.Allowed, "next window starts fresh")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	policy := Policy{Requests: 1, Window: time.Hour}

	res, err := limiter.Allow(ctx, "key", policy)
	require.NoError(t, err)
	require.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "key", policy)
	require.NoError(t, err)
	require.False(t, res.Allowed)

	require.NoError(t, limiter.Reset(ctx, "key"))

	res, err = limiter.Allow(ctx, "key", policy)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_DisabledPolicy(t *testing.T) {
	limiter := NewRedisRateLimiter(nil)
	res, err := limiter.Allow(context.Background(), "key", Policy{})
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestWebhookDeduplicator(t *testing.T) {
	client, _ := setupTestRedis(t)
	d := NewWebhookDeduplicator(client, time.Minute)
	ctx := context.Background()

	ok, err := d.TryAcquire(ctx, "stripe", "evt_1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.TryAcquire(ctx, "stripe", "evt_1")
	require.NoError(t, err)
	assert.False(t, ok, "second delivery is a duplicate")

	ttl, err := client.TTL(ctx, "webhook_event:stripe:evt_1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, d.Release(ctx, "stripe", "evt_1"))
	ok, err = d.TryAcquire(ctx, "stripe", "evt_1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWebhookDeduplicator_ExpiresAfterTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	d := NewWebhookDeduplicator(client, time.Hour)
	ctx := context.Background()

	ok, err := d.TryAcquire(ctx, "stripe", "evt_2")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(time.Hour + time.Second)

	ok, err = d.TryAcquire(ctx, "stripe", "evt_2")
	require.NoError(t, err)
	assert.True(t, ok, "event is accepted again once the window has passed")
}

func TestWebhookDeduplicator_ProvidersAreSeparate(t *testing.T) {
	client, _ := setupTestRedis(t)
	d := NewWebhookDeduplicator(client, time.Minute)
	ctx := context.Background()

	ok, err := d.TryAcquire(ctx, "stripe", "evt_3")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = d.TryAcquire(ctx, "other", "evt_3")
	require.NoError(t, err)
	assert.True(t, ok)
}

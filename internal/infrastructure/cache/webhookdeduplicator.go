package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	webhookKeyPrefix = "webhook_event:"
	// DefaultWebhookEventTTL is how long a processed event id is remembered.
	DefaultWebhookEventTTL = 24 * time.Hour
)

// WebhookDeduplicator remembers processed payment webhook event ids so that
// redelivered events are skipped.
type WebhookDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWebhookDeduplicator(client *redis.Client, ttl time.Duration) *WebhookDeduplicator {
	if ttl <= 0 {
		ttl = DefaultWebhookEventTTL
	}
	return &WebhookDeduplicator{client: client, ttl: ttl}
}

// Format: webhook_event:{provider}:{event_id}
func (d *WebhookDeduplicator) buildKey(provider, eventID string) string {
	return fmt.Sprintf("%s%s:%s", webhookKeyPrefix, provider, eventID)
}

// TryAcquire claims eventID with SetNX. It returns false when the event was
// already claimed within the TTL.
func (d *WebhookDeduplicator) TryAcquire(ctx context.Context, provider, eventID string) (bool, error) {
	acquired, err := d.client.SetNX(ctx, d.buildKey(provider, eventID), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire webhook event: %w", err)
	}
	return acquired, nil
}

// Release forgets eventID so a failed event can be processed on redelivery.
func (d *WebhookDeduplicator) Release(ctx context.Context, provider, eventID string) error {
	if err := d.client.Del(ctx, d.buildKey(provider, eventID)).Err(); err != nil {
		return fmt.Errorf("failed to release webhook event: %w", err)
	}
	return nil
}

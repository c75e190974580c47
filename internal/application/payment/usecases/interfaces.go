package usecases

import (
	"context"

	"marketplace/internal/application/payment/paymentgateway"
	subscriptionUsecases "marketplace/internal/application/subscription/usecases"
)

type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (*paymentgateway.WebhookEvent, error)
}

// EventDeduplicator remembers processed webhook event ids.
type EventDeduplicator interface {
	// TryAcquire returns false when the event was already seen.
	TryAcquire(ctx context.Context, provider, eventID string) (bool, error)
	Release(ctx context.Context, provider, eventID string) error
}

type SubscriptionCompleter interface {
	Execute(ctx context.Context, cmd subscriptionUsecases.CompleteSubscriptionCommand) (*subscriptionUsecases.CompleteSubscriptionResult, error)
}

type SubscriptionFailer interface {
	Execute(ctx context.Context, cmd subscriptionUsecases.FailSubscriptionCommand) (int, error)
}

package handlers

import (
	"context"

	paymentUsecases "marketplace/internal/application/payment/usecases"
	subdto "marketplace/internal/application/subscription/dto"
	subUsecases "marketplace/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd subUsecases.CreateSubscriptionCommand) (*subdto.CheckoutDTO, error)
}

type getMySubscriptionUseCase interface {
	Execute(ctx context.Context, userID uint) (*subdto.SubscriptionDTO, error)
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context, q subUsecases.ListSubscriptionsQuery) (*subUsecases.ListSubscriptionsResult, error)
}

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, subscriptionID uint) (*subdto.SubscriptionDTO, error)
}

type updateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd subUsecases.UpdateSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type deleteSubscriptionUseCase interface {
	Execute(ctx context.Context, subscriptionID uint) error
}

type handleWebhookUseCase interface {
	Execute(ctx context.Context, cmd paymentUsecases.HandleWebhookCommand) (*paymentUsecases.HandleWebhookResult, error)
}

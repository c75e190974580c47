package subscription

import (
	"context"

	"marketplace/internal/shared/query"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	// UpdateProductID writes only the product link so it survives a later failure.
	UpdateProductID(ctx context.Context, id uint, productID string) error
	Delete(ctx context.Context, id uint) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)
	// FindPending returns PENDING subscriptions for the user and plan.
	FindPending(ctx context.Context, userID, planID uint) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, int64, error)
}

type SubscriptionFilter struct {
	query.BaseFilter
	PaymentStatus *PaymentStatus
	PlanID        *uint
}

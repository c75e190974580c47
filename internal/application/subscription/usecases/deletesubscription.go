package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

// DeleteSubscriptionUseCase removes the row only; processor objects are left alone.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(subscriptionRepo subscription.SubscriptionRepository, logger logger.Interface) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, subscriptionID uint) error {
	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return appErrors.NewNotFoundError("Subscription not found")
	}

	if err := uc.subscriptionRepo.Delete(ctx, subscriptionID); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err, "subscription_id", subscriptionID)
		return err
	}

	uc.logger.Infow("subscription deleted successfully", "subscription_id", subscriptionID, "user_id", sub.UserID())
	return nil
}

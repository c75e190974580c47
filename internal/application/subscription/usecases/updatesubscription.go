package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type UpdateSubscriptionCommand struct {
	SubscriptionID uint
	StartDate      *time.Time
	EndDate        *time.Time
	ClearEndDate   bool
	Amount         *float64
	PaymentStatus  *string
}

type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(subscriptionRepo subscription.SubscriptionRepository, logger logger.Interface) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	if cmd.Amount != nil && *cmd.Amount < 0 {
		return nil, appErrors.NewValidationError("amount must not be negative")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, appErrors.NewNotFoundError("Subscription not found")
	}

	update := subscription.SubscriptionUpdate{
		StartDate:    cmd.StartDate,
		EndDate:      cmd.EndDate,
		ClearEndDate: cmd.ClearEndDate,
		Amount:       cmd.Amount,
	}
	if cmd.PaymentStatus != nil {
		status := subscription.PaymentStatus(strings.ToUpper(*cmd.PaymentStatus))
		update.PaymentStatus = &status
	}

	if err := sub.ApplyAdminUpdate(update); err != nil {
		if errors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, appErrors.NewConflictError(err.Error())
		}
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription updated successfully", "subscription_id", sub.ID(), "payment_status", sub.PaymentStatus())
	return dto.ToSubscriptionDTO(sub, nil), nil
}

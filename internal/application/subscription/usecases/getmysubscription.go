package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type GetMySubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	userRepo         UserReader
	logger           logger.Interface
}

func NewGetMySubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	userRepo UserReader,
	logger logger.Interface,
) *GetMySubscriptionUseCase {
	return &GetMySubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *GetMySubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, appErrors.NewNotFoundError("User not found")
	}

	sub, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, appErrors.NewNotFoundError("Subscription not found!")
	}
	return withPlan(ctx, uc.planRepo, uc.logger, sub)
}

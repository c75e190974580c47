package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, subscriptionID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, appErrors.NewNotFoundError("Subscription not found!")
	}
	return withPlan(ctx, uc.planRepo, uc.logger, sub)
}

// withPlan attaches the plan to the DTO; a plan that no longer exists is left out.
func withPlan(ctx context.Context, planRepo subscription.PlanRepository, log logger.Interface, sub *subscription.Subscription) (*dto.SubscriptionDTO, error) {
	plan, err := planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		log.Errorw("failed to get plan", "error", err, "plan_id", sub.PlanID())
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return dto.ToSubscriptionDTO(sub, plan), nil
}

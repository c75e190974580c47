package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, planID uint) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, appErrors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", planID))
	}
	return dto.ToPlanDTO(plan), nil
}

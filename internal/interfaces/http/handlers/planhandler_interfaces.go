package handlers

import (
	"context"

	subdto "marketplace/internal/application/subscription/dto"
	subUsecases "marketplace/internal/application/subscription/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd subUsecases.CreatePlanCommand) (*subdto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd subUsecases.UpdatePlanCommand) (*subdto.PlanDTO, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, planID uint) (*subdto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*subdto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, planID uint) error
}

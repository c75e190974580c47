package usecases

import (
	"context"
	"fmt"

	subscriptionDTO "marketplace/internal/application/subscription/dto"
	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type GetMeUseCase struct {
	userRepo         user.Repository
	subscriptionRepo SubscriptionReader
	planRepo         PlanReader
	logger           logger.Interface
}

func NewGetMeUseCase(
	userRepo user.Repository,
	subscriptionRepo SubscriptionReader,
	planRepo PlanReader,
	logger logger.Interface,
) *GetMeUseCase {
	return &GetMeUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, userID uint) (*dto.MeDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found!")
	}

	me := &dto.MeDTO{UserDTO: dto.ToUserDTO(u)}

	sub, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return me, nil
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", sub.PlanID())
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	me.Subscription = subscriptionDTO.ToSubscriptionDTO(sub, plan)

	return me, nil
}

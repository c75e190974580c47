package usecases

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/query"
)

type ListSubscriptionsQuery struct {
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
	PaymentStatus string
	PlanID        *uint
}

type ListSubscriptionsResult struct {
	Subscriptions []*dto.SubscriptionDTO
	Total         int64
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.SubscriptionRepository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, q ListSubscriptionsQuery) (*ListSubscriptionsResult, error) {
	filter := subscription.SubscriptionFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		},
		PlanID: q.PlanID,
	}
	if q.PaymentStatus != "" {
		status := subscription.PaymentStatus(strings.ToUpper(q.PaymentStatus))
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("invalid payment status", q.PaymentStatus)
		}
		filter.PaymentStatus = &status
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ListSubscriptionsResult{
		Subscriptions: dto.ToSubscriptionDTOs(subs),
		Total:         total,
	}, nil
}

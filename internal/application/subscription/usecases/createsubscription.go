package usecases

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"marketplace/internal/application/payment/paymentgateway"
	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/shared/biztime"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

// Payment intent metadata keys read back by the webhook handler.
const (
	MetadataUserID   = "userId"
	MetadataPlanID   = "planId"
	MetadataPlanType = "planType"
)

type CreateSubscriptionCommand struct {
	UserID uint
	PlanID uint
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	userRepo         UserReader
	gateway          paymentgateway.PaymentGateway
	txMgr            db.Transactor
	now              func() time.Time
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	userRepo UserReader,
	gateway paymentgateway.PaymentGateway,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		txMgr:            txMgr,
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.CheckoutDTO, error) {
	var result *dto.CheckoutDTO

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByID(txCtx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return appErrors.NewNotFoundError("User not found")
		}

		plan, err := uc.planRepo.GetByID(txCtx, cmd.PlanID)
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return appErrors.NewNotFoundError("Plan not found")
		}

		existing, err := uc.subscriptionRepo.GetByUserID(txCtx, u.ID())
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "error", err, "user_id", u.ID())
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if existing != nil && existing.IsCompleted() {
			return appErrors.NewConflictError("You already have an active subscription")
		}

		lifetime := plan.IsLifetime()
		startDate := uc.now()
		endDate := subscription.EndDateFor(plan, startDate)

		intent, err := uc.gateway.CreatePaymentIntent(txCtx, paymentgateway.PaymentIntentRequest{
			Amount:   plan.UnitAmount(),
			Currency: plan.Currency(),
			Metadata: map[string]string{
				MetadataUserID:   strconv.FormatUint(uint64(u.ID()), 10),
				MetadataPlanID:   strconv.FormatUint(uint64(plan.ID()), 10),
				MetadataPlanType: string(plan.Type()),
			},
		})
		if err != nil {
			uc.logger.Errorw("failed to create payment intent", "error", err, "user_id", u.ID(), "plan_id", plan.ID())
			return fmt.Errorf("failed to create payment intent: %w", err)
		}

		var sub *subscription.Subscription
		switch {
		case existing == nil:
			sub = subscription.NewPendingSubscription(u.ID(), plan.ID(), plan.Amount(), startDate, endDate, intent.ID)
			if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
				uc.logger.Errorw("failed to create subscription", "error", err, "user_id", u.ID())
				return fmt.Errorf("failed to create subscription: %w", err)
			}
		case existing.IsPending():
			existing.RestartPending(plan.ID(), plan.Amount(), startDate, endDate, lifetime, intent.ID)
			sub = existing
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
				return fmt.Errorf("failed to update subscription: %w", err)
			}
		default:
			if err := existing.Replace(plan.ID(), plan.Amount(), startDate, endDate, intent.ID); err != nil {
				return appErrors.NewConflictError("Subscription cannot be replaced", err.Error())
			}
			sub = existing
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				uc.logger.Errorw("failed to replace subscription", "error", err, "subscription_id", sub.ID())
				return fmt.Errorf("failed to update subscription: %w", err)
			}
		}

		result = &dto.CheckoutDTO{
			Subscription: dto.ToSubscriptionDTO(sub, nil),
			ClientSecret: intent.ClientSecret,
			PlanType:     string(plan.Type()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription checkout started",
		"user_id", cmd.UserID,
		"plan_id", cmd.PlanID,
		"plan_type", result.PlanType,
		"subscription_id", result.Subscription.ID,
	)
	return result, nil
}

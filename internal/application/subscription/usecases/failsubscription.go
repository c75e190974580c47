package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/shared/db"
	"marketplace/internal/shared/logger"
)

type FailSubscriptionCommand struct {
	UserID    uint
	PlanID    uint
	PaymentID string
}

type FailSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	txMgr            db.Transactor
	logger           logger.Interface
}

func NewFailSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *FailSubscriptionUseCase {
	return &FailSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Execute marks the PENDING attempt paid by PaymentID as FAILED. When PaymentID
// is empty every PENDING subscription of the pair is failed.
func (uc *FailSubscriptionUseCase) Execute(ctx context.Context, cmd FailSubscriptionCommand) (int, error) {
	failed := 0
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		pending, err := uc.subscriptionRepo.FindPending(txCtx, cmd.UserID, cmd.PlanID)
		if err != nil {
			uc.logger.Errorw("failed to find pending subscriptions", "error", err, "user_id", cmd.UserID, "plan_id", cmd.PlanID)
			return fmt.Errorf("failed to find pending subscriptions: %w", err)
		}

		for _, sub := range pending {
			if cmd.PaymentID != "" && sub.StripePaymentID() != cmd.PaymentID {
				continue
			}
			changed, err := sub.Fail()
			if err != nil || !changed {
				continue
			}
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				uc.logger.Errorw("failed to mark subscription failed", "error", err, "subscription_id", sub.ID())
				return fmt.Errorf("failed to update subscription: %w", err)
			}
			failed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if failed > 0 {
		uc.logger.Infow("subscription payment failed", "user_id", cmd.UserID, "plan_id", cmd.PlanID, "payment_id", cmd.PaymentID)
	}
	return failed, nil
}

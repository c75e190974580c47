package usecases

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

// CompleteSubscriptionCommand settles the PENDING subscriptions of (UserID, PlanID).
// With ExpiryFromSubscription set, the user's plan expiration is taken from the
// subscription end date and Expiry is ignored. A nil expiry means lifetime access.
type CompleteSubscriptionCommand struct {
	UserID                 uint
	PlanID                 uint
	PaymentID              string
	Expiry                 *time.Time
	ExpiryFromSubscription bool
}

type CompleteSubscriptionResult struct {
	Completed int
}

type CompleteSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	userRepo         UserWriter
	txMgr            db.Transactor
	logger           logger.Interface
}

func NewCompleteSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	userRepo UserWriter,
	txMgr db.Transactor,
	logger logger.Interface,
) *CompleteSubscriptionUseCase {
	return &CompleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Execute is idempotent: when nothing is PENDING the user is left untouched.
func (uc *CompleteSubscriptionUseCase) Execute(ctx context.Context, cmd CompleteSubscriptionCommand) (*CompleteSubscriptionResult, error) {
	result := &CompleteSubscriptionResult{}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		pending, err := uc.subscriptionRepo.FindPending(txCtx, cmd.UserID, cmd.PlanID)
		if err != nil {
			uc.logger.Errorw("failed to find pending subscriptions", "error", err, "user_id", cmd.UserID, "plan_id", cmd.PlanID)
			return fmt.Errorf("failed to find pending subscriptions: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		expiry := cmd.Expiry
		for _, sub := range pending {
			changed, err := sub.Complete(cmd.PaymentID)
			if err != nil {
				return appErrors.NewConflictError(err.Error())
			}
			if !changed {
				continue
			}
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				uc.logger.Errorw("failed to complete subscription", "error", err, "subscription_id", sub.ID())
				return fmt.Errorf("failed to update subscription: %w", err)
			}
			if cmd.ExpiryFromSubscription {
				expiry = sub.EndDate()
			}
			result.Completed++
		}
		if result.Completed == 0 {
			return nil
		}

		u, err := uc.userRepo.GetByID(txCtx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return appErrors.NewNotFoundError("User not found")
		}
		u.MarkSubscribed(expiry)
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			uc.logger.Errorw("failed to mark user subscribed", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Completed > 0 {
		uc.logger.Infow("subscription completed",
			"user_id", cmd.UserID,
			"plan_id", cmd.PlanID,
			"payment_id", cmd.PaymentID,
			"count", result.Completed,
		)
	}
	return result, nil
}

package usecases

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/application/payment/paymentgateway"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo subscription.PlanRepository
	gateway  paymentgateway.PaymentGateway
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewDeletePlanUseCase(
	planRepo subscription.PlanRepository,
	gateway paymentgateway.PaymentGateway,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		gateway:  gateway,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute deactivates the price and the product before the row is removed.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		plan, err := uc.planRepo.GetByID(txCtx, planID)
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return appErrors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", planID))
		}

		if plan.PriceID() != "" {
			if err := uc.gateway.SetPriceActive(txCtx, plan.PriceID(), false); err != nil && !errors.Is(err, paymentgateway.ErrNotFound) {
				uc.logger.Errorw("failed to deactivate price", "error", err, "price_id", plan.PriceID())
				return fmt.Errorf("failed to deactivate price: %w", err)
			}
		}
		if plan.ProductID() != "" {
			if err := uc.gateway.DeactivateProduct(txCtx, plan.ProductID()); err != nil && !errors.Is(err, paymentgateway.ErrNotFound) {
				uc.logger.Errorw("failed to deactivate product", "error", err, "product_id", plan.ProductID())
				return fmt.Errorf("failed to deactivate product: %w", err)
			}
		}

		if err := uc.planRepo.Delete(txCtx, planID); err != nil {
			uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
			return err
		}

		uc.logger.Infow("plan deleted successfully", "plan_id", planID)
		return nil
	})
}

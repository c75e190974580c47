package usecases

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/application/payment/paymentgateway"
	"marketplace/internal/application/subscription/dto"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID        uint
	PlanName      *string
	Description   *string
	Amount        *float64
	Currency      *string
	Interval      *string
	IntervalCount *int
	FreeTrialDays *int
	Active        *bool
	Features      []string
}

func (c UpdatePlanCommand) toUpdate() subscription.PlanUpdate {
	u := subscription.PlanUpdate{
		PlanName:      c.PlanName,
		Description:   c.Description,
		Amount:        c.Amount,
		Currency:      c.Currency,
		IntervalCount: c.IntervalCount,
		TrialDays:     c.FreeTrialDays,
		Active:        c.Active,
		Features:      c.Features,
	}
	if c.Interval != nil {
		interval := subscription.Interval(*c.Interval)
		u.Interval = &interval
	}
	return u
}

type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	gateway  paymentgateway.PaymentGateway
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewUpdatePlanUseCase(
	planRepo subscription.PlanRepository,
	gateway paymentgateway.PaymentGateway,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		gateway:  gateway,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	update := cmd.toUpdate()
	if err := update.Validate(); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, appErrors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", cmd.PlanID))
	}

	if err := uc.ensureProduct(ctx, plan, update); err != nil {
		return nil, err
	}

	if update.TouchesProduct() {
		name, _ := plan.Merged(update)
		description := plan.Description()
		if update.Description != nil {
			description = *update.Description
		}
		active := plan.Active()
		if update.Active != nil {
			active = *update.Active
		}
		if err := uc.gateway.UpdateProduct(ctx, plan.ProductID(), paymentgateway.ProductRequest{
			Name:        name,
			Description: description,
			Active:      active,
		}); err != nil {
			uc.logger.Errorw("failed to update product", "error", err, "product_id", plan.ProductID())
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	lifetime := plan.IsLifetimeAfter(update)
	_, nextTerms := plan.Merged(update)
	oldPriceID := plan.PriceID()
	newPriceID := ""

	if plan.PriceTerms().Differs(nextTerms, lifetime) {
		newPriceID, err = uc.gateway.CreatePrice(ctx, priceRequestFor(plan.ProductID(), nextTerms, lifetime))
		if err != nil {
			uc.logger.Errorw("failed to create price", "error", err, "plan_id", plan.ID())
			return nil, fmt.Errorf("failed to create price: %w", err)
		}

		if oldPriceID != "" {
			if err := uc.gateway.SetPriceActive(ctx, oldPriceID, false); err != nil {
				if !errors.Is(err, paymentgateway.ErrNotFound) {
					uc.logger.Errorw("failed to deactivate old price", "error", err, "price_id", oldPriceID)
					uc.rollbackPrice(ctx, newPriceID, "")
					return nil, fmt.Errorf("failed to deactivate old price: %w", err)
				}
				uc.logger.Warnw("old price not found, continuing", "price_id", oldPriceID)
			}
		}
	}

	plan.Apply(update)
	if newPriceID != "" {
		plan.SetPriceID(newPriceID)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.planRepo.Update(txCtx, plan)
	})
	if err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", plan.ID())
		if newPriceID != "" {
			uc.rollbackPrice(ctx, newPriceID, oldPriceID)
		}
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated successfully",
		"plan_id", plan.ID(),
		"price_changed", newPriceID != "",
		"price_id", plan.PriceID(),
	)

	return dto.ToPlanDTO(plan), nil
}

// ensureProduct recreates a product that disappeared at the processor and
// stores the new id right away so the link survives a later failure.
func (uc *UpdatePlanUseCase) ensureProduct(ctx context.Context, plan *subscription.Plan, update subscription.PlanUpdate) error {
	if plan.ProductID() != "" {
		exists, err := uc.gateway.ProductExists(ctx, plan.ProductID())
		if err != nil {
			uc.logger.Errorw("failed to check product", "error", err, "product_id", plan.ProductID())
			return fmt.Errorf("failed to check product: %w", err)
		}
		if exists {
			return nil
		}
		uc.logger.Warnw("product not found, creating a new one", "product_id", plan.ProductID(), "plan_id", plan.ID())
	}

	name, _ := plan.Merged(update)
	description := plan.Description()
	if update.Description != nil {
		description = *update.Description
	}
	active := plan.Active()
	if update.Active != nil {
		active = *update.Active
	}

	productID, err := uc.gateway.CreateProduct(ctx, paymentgateway.ProductRequest{
		Name:        name,
		Description: description,
		Active:      active,
	})
	if err != nil {
		uc.logger.Errorw("failed to recreate product", "error", err, "plan_id", plan.ID())
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := uc.planRepo.UpdateProductID(ctx, plan.ID(), productID); err != nil {
		uc.logger.Errorw("failed to save product id", "error", err, "plan_id", plan.ID(), "product_id", productID)
		return fmt.Errorf("failed to save product id: %w", err)
	}
	plan.SetProductID(productID)
	return nil
}

// rollbackPrice deactivates the new price and reactivates the old one. Failures are only logged.
func (uc *UpdatePlanUseCase) rollbackPrice(ctx context.Context, newPriceID, oldPriceID string) {
	if err := uc.gateway.SetPriceActive(ctx, newPriceID, false); err != nil {
		uc.logger.Errorw("rollback: failed to deactivate new price", "error", err, "price_id", newPriceID)
	}
	if oldPriceID == "" {
		return
	}
	if err := uc.gateway.SetPriceActive(ctx, oldPriceID, true); err != nil && !errors.Is(err, paymentgateway.ErrNotFound) {
		uc.logger.Errorw("rollback: failed to reactivate old price", "error", err, "price_id", oldPriceID)
	}
}

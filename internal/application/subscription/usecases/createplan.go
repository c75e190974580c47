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

type CreatePlanCommand struct {
	PlanName      string
	Description   string
	Amount        float64
	Currency      string
	Interval      string
	IntervalCount int
	FreeTrialDays int
	Features      []string
}

type CreatePlanUseCase struct {
	planRepo        subscription.PlanRepository
	gateway         paymentgateway.PaymentGateway
	txMgr           db.Transactor
	defaultCurrency string
	logger          logger.Interface
}

func NewCreatePlanUseCase(
	planRepo subscription.PlanRepository,
	gateway paymentgateway.PaymentGateway,
	txMgr db.Transactor,
	defaultCurrency string,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:        planRepo,
		gateway:         gateway,
		txMgr:           txMgr,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	currency := cmd.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	plan, err := subscription.NewPlan(subscription.PlanParams{
		PlanName:      cmd.PlanName,
		Description:   cmd.Description,
		Amount:        cmd.Amount,
		Currency:      currency,
		Interval:      subscription.Interval(cmd.Interval),
		IntervalCount: cmd.IntervalCount,
		TrialDays:     cmd.FreeTrialDays,
		Features:      cmd.Features,
	})
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	productID, err := uc.gateway.CreateProduct(ctx, paymentgateway.ProductRequest{
		Name:        plan.PlanName(),
		Description: plan.Description(),
		Active:      true,
	})
	if err != nil {
		uc.logger.Errorw("failed to create product", "error", err, "plan_name", plan.PlanName())
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	priceID, err := uc.gateway.CreatePrice(ctx, priceRequestFor(productID, plan.PriceTerms(), plan.IsLifetime()))
	if err != nil {
		uc.logger.Errorw("failed to create price", "error", err, "product_id", productID)
		uc.deactivateProduct(ctx, productID)
		return nil, fmt.Errorf("failed to create price: %w", err)
	}

	plan.AttachBilling(productID, priceID)

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.planRepo.Create(txCtx, plan)
	})
	if err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "product_id", productID, "price_id", priceID)
		uc.compensate(ctx, productID, priceID)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created successfully",
		"plan_id", plan.ID(),
		"plan_type", plan.Type(),
		"product_id", productID,
		"price_id", priceID,
	)

	return dto.ToPlanDTO(plan), nil
}

// compensate deactivates the billing objects of a plan that was never stored.
func (uc *CreatePlanUseCase) compensate(ctx context.Context, productID, priceID string) {
	if err := uc.gateway.SetPriceActive(ctx, priceID, false); err != nil && !errors.Is(err, paymentgateway.ErrNotFound) {
		uc.logger.Errorw("failed to deactivate orphaned price", "error", err, "price_id", priceID)
	}
	uc.deactivateProduct(ctx, productID)
}

func (uc *CreatePlanUseCase) deactivateProduct(ctx context.Context, productID string) {
	if err := uc.gateway.DeactivateProduct(ctx, productID); err != nil && !errors.Is(err, paymentgateway.ErrNotFound) {
		uc.logger.Errorw("failed to deactivate orphaned product", "error", err, "product_id", productID)
	}
}

// priceRequestFor builds a price; the recurring block is left out for lifetime plans.
func priceRequestFor(productID string, terms subscription.PriceTerms, lifetime bool) paymentgateway.PriceRequest {
	req := paymentgateway.PriceRequest{
		ProductID:  productID,
		UnitAmount: subscription.UnitAmount(terms.Amount),
		Currency:   terms.Currency,
	}
	if lifetime {
		return req
	}
	count := terms.IntervalCount
	if count < 1 {
		count = 1
	}
	req.Recurring = true
	req.Interval = string(terms.Interval)
	req.IntervalCount = count
	return req
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/infrastructure/persistence/mappers"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "plan_name", plan.PlanName())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	plan.SetID(model.ID)
	r.logger.Infow("plan created successfully", "plan_id", model.ID, "plan_name", plan.PlanName())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []*models.PlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Order("id DESC").
		Find(&planModels).Error
	if err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"plan_name":        model.PlanName,
			"description":      model.Description,
			"amount":           model.Amount,
			"currency":         model.Currency,
			"billing_interval": model.Interval,
			"interval_count":   model.IntervalCount,
			"trial_days":       model.TrialDays,
			"product_id":       model.ProductID,
			"price_id":         model.PriceID,
			"active":           model.Active,
			"features":         model.Features,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	r.logger.Infow("plan updated successfully", "plan_id", plan.ID())
	return nil
}

func (r *PlanRepositoryImpl) UpdateProductID(ctx context.Context, id uint, productID string) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"product_id": productID,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update plan product", "error", err, "plan_id", id)
		return fmt.Errorf("failed to update plan product: %w", err)
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("Plan not found")
	}

	r.logger.Infow("plan deleted successfully", "plan_id", id)
	return nil
}

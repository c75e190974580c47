package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/infrastructure/persistence/mappers"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/mapper"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("User already has a subscription")
		}
		r.logger.Errorw("failed to create subscription", "error", err, "user_id", sub.UserID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	sub.SetID(model.ID)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToEntity(&model), nil
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get subscription by user: %w", err)
	}
	return mappers.SubscriptionToEntity(&model), nil
}

func (r *SubscriptionRepositoryImpl) FindPending(ctx context.Context, userID, planID uint) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND plan_id = ? AND payment_status = ?",
			userID, planID, string(subscription.PaymentStatusPending)).
		Find(&subModels).Error
	if err != nil {
		r.logger.Errorw("failed to find pending subscriptions", "error", err, "user_id", userID, "plan_id", planID)
		return nil, fmt.Errorf("failed to find pending subscriptions: %w", err)
	}
	return mapper.MapSlice(subModels, mappers.SubscriptionToEntity), nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(sub)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_id":           model.PlanID,
			"start_date":        model.StartDate,
			"end_date":          model.EndDate,
			"amount":            model.Amount,
			"stripe_payment_id": model.StripePaymentID,
			"payment_status":    model.PaymentStatus,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", model.ID)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "error", result.Error, "subscription_id", id)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("Subscription not found")
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})

	if filter.PaymentStatus != nil && *filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", string(*filter.PaymentStatus))
	}
	if filter.PlanID != nil {
		q = q.Where("plan_id = ?", *filter.PlanID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var subModels []*models.SubscriptionModel
	err := paginate(q, filter.PageFilter).
		Order(filter.OrderClause("created_at", "created_at", "start_date", "end_date", "amount")).
		Order("id DESC").
		Find(&subModels).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return mapper.MapSlice(subModels, mappers.SubscriptionToEntity), total, nil
}

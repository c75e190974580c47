package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marketplace/internal/domain/user"
	"marketplace/internal/infrastructure/persistence/mappers"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/db"
	"marketplace/internal/shared/logger"
)

type OTPRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewOTPRepository(db *gorm.DB, logger logger.Interface) user.OTPRepository {
	return &OTPRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *OTPRepositoryImpl) Create(ctx context.Context, otp *user.OTPRecord) error {
	model := mappers.OTPToModel(otp)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create otp", "error", err)
		return fmt.Errorf("failed to create otp: %w", err)
	}
	otp.SetID(model.ID)
	return nil
}

func (r *OTPRepositoryImpl) FindLatestUnverified(ctx context.Context, email string) (*user.OTPRecord, error) {
	var model models.OTPModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ? AND is_verified = ?", user.NormalizeEmail(email), false).
		Order("created_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find otp", "error", err)
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}
	return mappers.OTPToEntity(&model), nil
}

func (r *OTPRepositoryImpl) MarkVerified(ctx context.Context, id uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OTPModel{}).
		Where("id = ?", id).
		Update("is_verified", true).Error
	if err != nil {
		r.logger.Errorw("failed to mark otp verified", "error", err, "otp_id", id)
		return fmt.Errorf("failed to mark otp verified: %w", err)
	}
	return nil
}

func (r *OTPRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.OTPModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete otp", "error", err, "otp_id", id)
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

func (r *OTPRepositoryImpl) DeleteUnverifiedByEmail(ctx context.Context, email string) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ? AND is_verified = ?", user.NormalizeEmail(email), false).
		Delete(&models.OTPModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete pending otps", "error", err)
		return fmt.Errorf("failed to delete pending otps: %w", err)
	}
	return nil
}

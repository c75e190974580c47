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
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return user.ErrEmailExists
		}
		r.logger.Errorw("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", user.NormalizeEmail(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name":           model.FirstName,
			"last_name":            model.LastName,
			"full_name":            model.FullName,
			"password_hash":        model.PasswordHash,
			"role":                 model.Role,
			"profile_pic":          model.ProfilePic,
			"is_verified":          model.IsVerified,
			"is_subscribed":        model.IsSubscribed,
			"plan_expiration":      model.PlanExpiration,
			"password_changed_at":  model.PasswordChangedAt,
			"is_reset_password":    model.IsResetPassword,
			"can_reset_password":   model.CanResetPassword,
			"reset_otp":            model.ResetOTP,
			"reset_otp_expires_at": model.ResetOTPExpiresAt,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "error", result.Error, "user_id", model.ID)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "error", result.Error, "user_id", id)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("User not found")
	}

	r.logger.Infow("user deleted successfully", "user_id", id)
	return nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Role != nil && *filter.Role != "" {
		q = q.Where("role = ?", *filter.Role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	err := paginate(q, filter.PageFilter).
		Order(filter.OrderClause("created_at", "created_at", "email", "first_name", "last_name")).
		Order("id DESC").
		Find(&userModels).Error
	if err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToEntities(userModels), total, nil
}

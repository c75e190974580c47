package mappers

import (
	"marketplace/internal/domain/user"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*user.User
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}

	var resetOTP string
	if model.ResetOTP != nil {
		resetOTP = *model.ResetOTP
	}

	return user.Reconstruct(user.ReconstructParams{
		ID:                model.ID,
		FirstName:         model.FirstName,
		LastName:          model.LastName,
		FullName:          model.FullName,
		Email:             model.Email,
		PasswordHash:      model.PasswordHash,
		Role:              model.Role,
		ProfilePic:        model.ProfilePic,
		Provider:          model.Provider,
		IsVerified:        model.IsVerified,
		IsSubscribed:      model.IsSubscribed,
		PlanExpiration:    model.PlanExpiration,
		PasswordChangedAt: model.PasswordChangedAt,
		IsResetPassword:   model.IsResetPassword,
		CanResetPassword:  model.CanResetPassword,
		ResetOTP:          resetOTP,
		ResetOTPExpiresAt: model.ResetOTPExpiresAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	var resetOTP *string
	if otp := entity.ResetOTP(); otp != "" {
		resetOTP = &otp
	}

	return &models.UserModel{
		ID:                entity.ID(),
		FirstName:         entity.FirstName(),
		LastName:          entity.LastName(),
		FullName:          entity.RawFullName(),
		Email:             entity.Email(),
		PasswordHash:      entity.PasswordHash(),
		Role:              entity.Role().String(),
		ProfilePic:        entity.ProfilePic(),
		Provider:          string(entity.Provider()),
		IsVerified:        entity.IsVerified(),
		IsSubscribed:      entity.IsSubscribed(),
		PlanExpiration:    entity.PlanExpiration(),
		PasswordChangedAt: entity.PasswordChangedAt(),
		IsResetPassword:   entity.IsResetPassword(),
		CanResetPassword:  entity.CanResetPassword(),
		ResetOTP:          resetOTP,
		ResetOTPExpiresAt: entity.ResetOTPExpiresAt(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) []*user.User {
	return mapper.MapSlice(userModels, m.ToEntity)
}

// OTPToEntity converts a registration code row.
func OTPToEntity(model *models.OTPModel) *user.OTPRecord {
	if model == nil {
		return nil
	}
	return user.ReconstructOTPRecord(model.ID, model.Email, model.Code, model.ExpiresAt, model.IsVerified, model.CreatedAt)
}

func OTPToModel(entity *user.OTPRecord) *models.OTPModel {
	return &models.OTPModel{
		ID:         entity.ID(),
		Email:      entity.Email(),
		Code:       entity.Code(),
		ExpiresAt:  entity.ExpiresAt(),
		IsVerified: entity.IsVerified(),
		CreatedAt:  entity.CreatedAt(),
	}
}

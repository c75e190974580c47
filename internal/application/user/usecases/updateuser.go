package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

// UpdateUserCommand changes names and picture. Nil names and an empty
// ProfilePic keep the stored values.
type UpdateUserCommand struct {
	UserID     uint
	FirstName  *string
	LastName   *string
	ProfilePic string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found!")
	}

	u.UpdateNames(cmd.FirstName, cmd.LastName)
	u.SetProfilePic(cmd.ProfilePic)

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated successfully", "user_id", cmd.UserID)
	return dto.ToUserDTO(u), nil
}

type UpdateProfileCommand struct {
	UserID     uint
	FullName   *string
	ProfilePic string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found!")
	}

	if cmd.FullName != nil {
		u.SetFullName(*cmd.FullName)
	}
	u.SetProfilePic(cmd.ProfilePic)

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("profile updated successfully", "user_id", cmd.UserID)
	return dto.ToUserDTO(u), nil
}

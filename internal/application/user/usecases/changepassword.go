package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/biztime"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.NewPassword == "" {
		return errors.NewBadRequestError("New password is required!")
	}
	if cmd.ConfirmPassword == "" {
		return errors.NewBadRequestError("Confirm password is required!")
	}
	if cmd.NewPassword != cmd.ConfirmPassword {
		return errors.NewBadRequestError("New password and confirm password do not match!")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}

	if err := uc.passwordHasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("Current password is incorrect!")
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.SetPassword(hash, biztime.NowUTC())

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("password changed successfully", "user_id", cmd.UserID)
	return nil
}

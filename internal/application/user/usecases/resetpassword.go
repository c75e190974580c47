package usecases

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/biztime"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/goroutine"
	"marketplace/internal/shared/logger"
)

const noticeTimeout = 30 * time.Second

type ResetPasswordCommand struct {
	Email           string
	NewPassword     string
	ConfirmPassword string
}

// ResetPasswordUseCase sets a new password once the reset OTP or link was verified.
// With notify set it also emails a confirmation in the background.
type ResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	emailService   EmailService
	notify         bool
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

// NewResetPasswordWithNoticeUseCase backs the link based flow, which confirms the change by email.
func NewResetPasswordWithNoticeUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		emailService:   emailService,
		notify:         true,
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if cmd.NewPassword == "" {
		return errors.NewBadRequestError("New password is required!")
	}
	if cmd.NewPassword != cmd.ConfirmPassword {
		return errors.NewBadRequestError("New password and confirm password do not match!")
	}

	u, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}
	if !u.CanResetPassword() {
		return errors.NewUnauthorizedError("You are not allowed to reset password!")
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.ResetPassword(hash, biztime.NowUTC()); err != nil {
		return errors.NewUnauthorizedError("You are not allowed to reset password!")
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", err)
	}

	if uc.notify && uc.emailService != nil {
		to, name, userID := u.Email(), displayName(u), u.ID()
		goroutine.Detached(ctx, uc.logger, "password-changed-email", noticeTimeout, func(ctx context.Context) error {
			if err := uc.emailService.SendPasswordChanged(ctx, to, name); err != nil {
				return fmt.Errorf("user %d: %w", userID, err)
			}
			return nil
		})
	}

	uc.logger.Infow("password reset successfully", "user_id", u.ID())
	return nil
}

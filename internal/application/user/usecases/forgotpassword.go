package usecases

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/biztime"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type ForgotPasswordUseCase struct {
	userRepo     user.Repository
	otpGenerator OTPGenerator
	emailService EmailService
	ttl          time.Duration
	logger       logger.Interface
}

func NewForgotPasswordUseCase(
	userRepo user.Repository,
	otpGenerator OTPGenerator,
	emailService EmailService,
	ttl time.Duration,
	logger logger.Interface,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:     userRepo,
		otpGenerator: otpGenerator,
		emailService: emailService,
		ttl:          ttlOrDefault(ttl),
		logger:       logger,
	}
}

// Execute stores a reset code on the account and emails it.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, email string) error {
	u, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}

	code, err := uc.otpGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate otp", "error", err)
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	if err := u.RequestPasswordReset(code, biztime.NowUTC().Add(uc.ttl)); err != nil {
		return errors.NewUnauthorizedError("User is not verified!")
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.emailService.SendResetOTP(ctx, u.Email(), displayName(u), code); err != nil {
		uc.logger.Errorw("failed to send reset otp", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	uc.logger.Infow("password reset otp sent", "user_id", u.ID())
	return nil
}

package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/biztime"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type VerifyResetOTPCommand struct {
	Email string
	OTP   string
}

type VerifyResetOTPUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyResetOTPUseCase(userRepo user.Repository, logger logger.Interface) *VerifyResetOTPUseCase {
	return &VerifyResetOTPUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *VerifyResetOTPUseCase) Execute(ctx context.Context, cmd VerifyResetOTPCommand) error {
	u, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}

	if err := u.VerifyResetOTP(strings.TrimSpace(cmd.OTP), biztime.NowUTC()); err != nil {
		switch {
		case stderrors.Is(err, user.ErrResetNotRequested):
			return errors.NewBadRequestError("Password reset was not requested!")
		case stderrors.Is(err, user.ErrOTPExpired):
			return errors.NewBadRequestError("OTP has expired!")
		default:
			return errors.NewBadRequestError("Invalid OTP!")
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("reset otp verified", "user_id", u.ID())
	return nil
}

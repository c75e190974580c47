package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

// VerifyResetLinkUseCase unlocks a password reset from an emailed link.
type VerifyResetLinkUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewVerifyResetLinkUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *VerifyResetLinkUseCase {
	return &VerifyResetLinkUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *VerifyResetLinkUseCase) Execute(ctx context.Context, token string) error {
	userID, err := uc.tokens.VerifyLinkToken(token, user.LinkPurposeResetPassword)
	if err != nil {
		uc.logger.Warnw("invalid reset link token", "error", err)
		return errors.NewUnauthorizedError("Invalid or expired reset link")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}

	u.AllowPasswordReset()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("password reset unlocked by link", "user_id", userID)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type VerifyEmailUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, token string) error {
	userID, err := uc.tokens.VerifyLinkToken(token, user.LinkPurposeVerifyEmail)
	if err != nil {
		uc.logger.Warnw("invalid verification token", "error", err)
		return errors.NewUnauthorizedError("Invalid or expired verification link")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}

	if err := u.MarkVerified(); err != nil {
		return errors.NewBadRequestError("User already verified!")
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("email verified", "user_id", userID)
	return nil
}

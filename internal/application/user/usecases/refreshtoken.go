package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute issues a new access token. Refresh tokens minted before the last
// password change are rejected.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	userID, issuedAt, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		uc.logger.Warnw("invalid refresh token", "error", err)
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found!")
	}

	if u.PasswordChangedAfter(issuedAt) {
		return nil, errors.NewUnauthorizedError("Password was changed recently, please log in again")
	}

	access, err := uc.tokens.GenerateAccess(u.ID(), u.Email(), u.Role(), u.IsVerified())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenPairDTO{AccessToken: access}, nil
}

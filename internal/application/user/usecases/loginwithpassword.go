package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.TokenPairDTO, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("User not found!")
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("password mismatch on login", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError("Password is incorrect!")
	}

	tokens, err := issueTokens(uc.tokens, existingUser)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", existingUser.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())
	return tokens, nil
}

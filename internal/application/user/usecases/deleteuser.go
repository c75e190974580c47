package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("User not found!")
		}
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted successfully", "user_id", userID)
	return nil
}

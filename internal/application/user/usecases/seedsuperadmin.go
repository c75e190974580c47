package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/logger"
)

// SeedSuperAdminUseCase creates the configured super admin when the email is not taken.
type SeedSuperAdminUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewSeedSuperAdminUseCase(userRepo user.Repository, passwordHasher user.PasswordHasher, logger logger.Interface) *SeedSuperAdminUseCase {
	return &SeedSuperAdminUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

// Execute reports whether a user was created.
func (uc *SeedSuperAdminUseCase) Execute(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		uc.logger.Warnw("super admin credentials not configured, skipping seed")
		return false, nil
	}

	existing, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	hash, err := uc.passwordHasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewUser(user.NewUserParams{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Super",
		LastName:     "Admin",
		Role:         authorization.RoleSuperAdmin,
		Verified:     true,
	})
	if err != nil {
		return false, fmt.Errorf("invalid super admin: %w", err)
	}

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create super admin: %w", err)
	}

	uc.logger.Infow("super admin seeded", "user_id", admin.ID())
	return true, nil
}

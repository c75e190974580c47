package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterUserUseCase creates an unverified account and emails a verification link.
type RegisterUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	emailService   EmailService
	verifyEmailURL string
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	tokens TokenService,
	emailService EmailService,
	verifyEmailURL string,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokens:         tokens,
		emailService:   emailService,
		verifyEmailURL: verifyEmailURL,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	if cmd.Password == "" {
		return nil, errors.NewBadRequestError("Password is required!")
	}

	email := user.NormalizeEmail(cmd.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("User with this email: %s already exists!", email))
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(user.NewUserParams{
		Email:        email,
		PasswordHash: hash,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Role:         authorization.RoleUser,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if stderrors.Is(err, user.ErrEmailExists) {
			return nil, errors.NewBadRequestError(fmt.Sprintf("User with this email: %s already exists!", email))
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := sendVerificationLink(ctx, uc.tokens, uc.emailService, uc.verifyEmailURL, newUser); err != nil {
		uc.logger.Errorw("failed to send verification link", "error", err, "user_id", newUser.ID())
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())
	return dto.ToUserDTO(newUser), nil
}

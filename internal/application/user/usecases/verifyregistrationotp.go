package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/biztime"
	"marketplace/internal/shared/db"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type VerifyRegistrationOTPCommand struct {
	OTP       string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type VerifyRegistrationOTPUseCase struct {
	userRepo       user.Repository
	otpRepo        user.OTPRepository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewVerifyRegistrationOTPUseCase(
	userRepo user.Repository,
	otpRepo user.OTPRepository,
	passwordHasher user.PasswordHasher,
	tokens TokenService,
	txMgr db.Transactor,
	logger logger.Interface,
) *VerifyRegistrationOTPUseCase {
	return &VerifyRegistrationOTPUseCase{
		userRepo:       userRepo,
		otpRepo:        otpRepo,
		passwordHasher: passwordHasher,
		tokens:         tokens,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute checks the emailed code and creates the verified account it was issued for.
func (uc *VerifyRegistrationOTPUseCase) Execute(ctx context.Context, cmd VerifyRegistrationOTPCommand) (*dto.TokenPairDTO, error) {
	email := user.NormalizeEmail(cmd.Email)
	code := strings.TrimSpace(cmd.OTP)
	if email == "" || code == "" {
		return nil, errors.NewBadRequestError("Email and OTP are required!")
	}
	if !otpPattern.MatchString(code) {
		return nil, errors.NewBadRequestError("OTP must be 6 digits!")
	}
	if cmd.Password == "" {
		return nil, errors.NewBadRequestError("Password is required!")
	}

	role := authorization.RoleUser
	if cmd.Role != "" {
		role = authorization.UserRole(strings.ToUpper(cmd.Role))
		if !role.IsValid() || role.IsAdmin() {
			return nil, errors.NewValidationError("invalid role", cmd.Role)
		}
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("User with this email: %s already exists!", email))
	}

	record, err := uc.otpRepo.FindLatestUnverified(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to find otp", "error", err)
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}
	if record == nil {
		return nil, errors.NewNotFoundError("OTP not found or already used. Please request a new OTP.")
	}

	if err := record.Check(code, biztime.NowUTC()); err != nil {
		if stderrors.Is(err, user.ErrOTPExpired) {
			if delErr := uc.otpRepo.Delete(ctx, record.ID()); delErr != nil {
				uc.logger.Warnw("failed to delete expired otp", "error", delErr, "otp_id", record.ID())
			}
			return nil, errors.NewUnauthorizedError("OTP has expired. Please request a new verification code.")
		}
		return nil, errors.NewUnauthorizedError("Invalid OTP. Please check the code and try again.")
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
		Role:         role,
		Provider:     user.ProviderEmail,
		Verified:     true,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.otpRepo.MarkVerified(txCtx, record.ID()); err != nil {
			return fmt.Errorf("failed to mark otp verified: %w", err)
		}
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			if stderrors.Is(err, user.ErrEmailExists) {
				return errors.NewConflictError("User with this email already exists")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to register user", "error", err)
		return nil, err
	}

	tokens, err := issueTokens(uc.tokens, newUser)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", newUser.ID())
		return nil, err
	}

	uc.logger.Infow("user registered via otp", "user_id", newUser.ID(), "role", newUser.Role())
	return tokens, nil
}

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

type RequestRegistrationOTPCommand struct {
	Email string
}

type RequestRegistrationOTPUseCase struct {
	userRepo     user.Repository
	otpRepo      user.OTPRepository
	otpGenerator OTPGenerator
	emailService EmailService
	ttl          time.Duration
	logger       logger.Interface
}

func NewRequestRegistrationOTPUseCase(
	userRepo user.Repository,
	otpRepo user.OTPRepository,
	otpGenerator OTPGenerator,
	emailService EmailService,
	ttl time.Duration,
	logger logger.Interface,
) *RequestRegistrationOTPUseCase {
	return &RequestRegistrationOTPUseCase{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		otpGenerator: otpGenerator,
		emailService: emailService,
		ttl:          ttlOrDefault(ttl),
		logger:       logger,
	}
}

func (uc *RequestRegistrationOTPUseCase) Execute(ctx context.Context, cmd RequestRegistrationOTPCommand) error {
	email := user.NormalizeEmail(cmd.Email)
	if !user.ValidEmail(email) {
		return errors.NewValidationError("invalid email address")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return errors.NewBadRequestError(fmt.Sprintf("User with this email: %s already exists!", email))
	}

	if err := uc.otpRepo.DeleteUnverifiedByEmail(ctx, email); err != nil {
		uc.logger.Errorw("failed to clear previous otps", "error", err)
		return fmt.Errorf("failed to clear previous otps: %w", err)
	}

	code, err := uc.otpGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate otp", "error", err)
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	record := user.NewOTPRecord(email, code, uc.ttl, biztime.NowUTC())
	if err := uc.otpRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to save otp", "error", err)
		return fmt.Errorf("failed to save otp: %w", err)
	}

	if err := uc.emailService.SendRegistrationOTP(ctx, email, code); err != nil {
		uc.logger.Errorw("failed to send registration otp", "error", err, "otp_id", record.ID())
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	uc.logger.Infow("registration otp sent", "otp_id", record.ID())
	return nil
}

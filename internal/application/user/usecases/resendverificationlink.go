package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/user"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type ResendVerificationLinkUseCase struct {
	userRepo       user.Repository
	tokens         TokenService
	emailService   EmailService
	verifyEmailURL string
	logger         logger.Interface
}

func NewResendVerificationLinkUseCase(
	userRepo user.Repository,
	tokens TokenService,
	emailService EmailService,
	verifyEmailURL string,
	logger logger.Interface,
) *ResendVerificationLinkUseCase {
	return &ResendVerificationLinkUseCase{
		userRepo:       userRepo,
		tokens:         tokens,
		emailService:   emailService,
		verifyEmailURL: verifyEmailURL,
		logger:         logger,
	}
}

func (uc *ResendVerificationLinkUseCase) Execute(ctx context.Context, email string) error {
	u, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError("User not found!")
	}
	if u.IsVerified() {
		return errors.NewBadRequestError("User already verified!")
	}

	if err := sendVerificationLink(ctx, uc.tokens, uc.emailService, uc.verifyEmailURL, u); err != nil {
		uc.logger.Errorw("failed to send verification link", "error", err, "user_id", u.ID())
		return err
	}

	uc.logger.Infow("verification link resent", "user_id", u.ID())
	return nil
}

func sendVerificationLink(ctx context.Context, tokens TokenService, emailService EmailService, base string, u *user.User) error {
	token, err := tokens.GenerateLinkToken(u.ID(), u.Email(), user.LinkPurposeVerifyEmail)
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}
	link, err := linkWithToken(base, token)
	if err != nil {
		return err
	}
	if err := emailService.SendVerificationLink(ctx, u.Email(), displayName(u), link); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

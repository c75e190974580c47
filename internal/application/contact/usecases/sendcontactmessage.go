package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/domain/contact"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type ContactMailer interface {
	SendContactMessage(ctx context.Context, msg contact.Message) error
}

// TextSanitizer strips markup from user input.
type TextSanitizer interface {
	PlainText(input string) string
}

type SendContactMessageCommand struct {
	FullName    string
	Email       string
	Subject     string
	Description string
}

type SendContactMessageUseCase struct {
	mailer    ContactMailer
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewSendContactMessageUseCase(mailer ContactMailer, sanitizer TextSanitizer, logger logger.Interface) *SendContactMessageUseCase {
	return &SendContactMessageUseCase{
		mailer:    mailer,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *SendContactMessageUseCase) Execute(ctx context.Context, cmd SendContactMessageCommand) error {
	msg := contact.Message{
		FullName:    uc.sanitizer.PlainText(cmd.FullName),
		Email:       uc.sanitizer.PlainText(cmd.Email),
		Subject:     uc.sanitizer.PlainText(cmd.Subject),
		Description: uc.sanitizer.PlainText(cmd.Description),
	}
	if err := msg.Validate(); err != nil {
		return errors.NewBadRequestError("All fields are required!")
	}

	if err := uc.mailer.SendContactMessage(ctx, msg); err != nil {
		uc.logger.Errorw("failed to send contact message", "error", err)
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	uc.logger.Infow("contact message sent")
	return nil
}

package email

import (
	"context"
	"time"

	"marketplace/internal/domain/contact"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

type ContactMessage = contact.Message

// Service renders transactional emails and hands them to a Sender.
// A nil sender makes every call fail with ErrEmailServiceNotConfigured.
type Service struct {
	sender       Sender
	contactInbox string
	otpTTL       time.Duration
	logger       logger.Interface
}

func NewService(sender Sender, contactInbox string, otpTTL time.Duration, logger logger.Interface) *Service {
	return &Service{
		sender:       sender,
		contactInbox: contactInbox,
		otpTTL:       otpTTL,
		logger:       logger,
	}
}

func (s *Service) send(ctx context.Context, kind string, tpl *template, to string, data any) error {
	if s.sender == nil {
		s.logger.Warnw("email service not configured, cannot send email", "kind", kind, "to", utils.MaskEmail(to))
		return ErrEmailServiceNotConfigured
	}

	msg, err := tpl.render(to, data)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Errorw("failed to send email", "kind", kind, "to", utils.MaskEmail(to), "error", err)
		return err
	}

	s.logger.Debugw("email sent", "kind", kind, "to", utils.MaskEmail(to))
	return nil
}

func (s *Service) minutes() int {
	return int(s.otpTTL / time.Minute)
}

func (s *Service) SendRegistrationOTP(ctx context.Context, to, otp string) error {
	return s.send(ctx, "registration_otp", registrationOTPTemplate, to, map[string]any{
		"OTP":     otp,
		"Minutes": s.minutes(),
	})
}

func (s *Service) SendVerificationLink(ctx context.Context, to, name, link string) error {
	return s.send(ctx, "verification_link", verificationLinkTemplate, to, map[string]any{
		"Name": name,
		"Link": link,
	})
}

func (s *Service) SendResetOTP(ctx context.Context, to, name, otp string) error {
	return s.send(ctx, "reset_otp", resetOTPTemplate, to, map[string]any{
		"Name":    name,
		"OTP":     otp,
		"Minutes": s.minutes(),
	})
}

func (s *Service) SendPasswordChanged(ctx context.Context, to, name string) error {
	return s.send(ctx, "password_changed", passwordChangedTemplate, to, map[string]any{
		"Name": name,
	})
}

// SendContactMessage delivers a contact form entry to the support inbox with
// Reply-To pointing at the sender.
func (s *Service) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if s.sender == nil {
		s.logger.Warnw("email service not configured, cannot send contact message", "from", msg.Email)
		return ErrEmailServiceNotConfigured
	}

	rendered, err := contactTemplate.render(s.contactInbox, msg)
	if err != nil {
		return err
	}
	rendered.Subject = msg.Subject
	rendered.ReplyTo = msg.Email
	rendered.ReplyToName = msg.FullName

	if err := s.sender.Send(ctx, rendered); err != nil {
		s.logger.Errorw("failed to send contact message", "from", msg.Email, "error", err)
		return err
	}
	return nil
}

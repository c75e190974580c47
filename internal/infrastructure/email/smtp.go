package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"marketplace/internal/shared/config"
)

var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

// Message is a rendered email ready to be sent.
type Message struct {
	To          string
	ReplyTo     string
	ReplyToName string
	Subject     string
	HTML        string
	Text        string
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers messages through an SMTP relay.
type SMTPSender struct {
	fromAddress string
	fromName    string
	dialer      dialer
}

// NewSMTPSender returns nil when no SMTP host is configured.
func NewSMTPSender(cfg *config.EmailConfig) *SMTPSender {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPSender{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetAddressHeader("Reply-To", msg.ReplyTo, msg.ReplyToName)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

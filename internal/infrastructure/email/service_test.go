package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"marketplace/internal/shared/config"
	"marketplace/internal/shared/logger"
)

type recordingSender struct {
	sent []*Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg *Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func TestService_SendRegistrationOTP(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "support@example.com", 10*time.Minute, logger.NewNop())

	require.NoError(t, svc.SendRegistrationOTP(context.Background(), "a@example.com", "123456"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "a@example.com", msg.To)
	assert.Contains(t, msg.HTML, "123456")
	assert.Contains(t, msg.Text, "123456")
	assert.Contains(t, msg.Text, "10 minutes")
}

func TestService_VerificationLinkIsEscaped(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "support@example.com", 10*time.Minute, logger.NewNop())

	err := svc.SendVerificationLink(context.Background(), "a@example.com", "<b>Ann</b>", "https://app.example.com/verify?token=abc")
	require.NoError(t, err)

	msg := sender.sent[0]
	assert.NotContains(t, msg.HTML, "<b>Ann</b>")
	assert.Contains(t, msg.HTML, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.Contains(t, msg.Text, "https://app.example.com/verify?token=abc")
}

func TestService_SendContactMessage(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "support@example.com", 10*time.Minute, logger.NewNop())

	err := svc.SendContactMessage(context.Background(), ContactMessage{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Subject:     "Question",
		Description: "Hello there",
	})
	require.NoError(t, err)

	msg := sender.sent[0]
	assert.Equal(t, "support@example.com", msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Equal(t, "Jane Doe", msg.ReplyToName)
	assert.Equal(t, "Question", msg.Subject)
	assert.Contains(t, msg.Text, "Hello there")
}

func TestService_NotConfigured(t *testing.T) {
	svc := NewService(nil, "support@example.com", 10*time.Minute, logger.NewNop())

	err := svc.SendResetOTP(context.Background(), "a@example.com", "Ann", "654321")
	assert.ErrorIs(t, err, ErrEmailServiceNotConfigured)

	err = svc.SendContactMessage(context.Background(), ContactMessage{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrEmailServiceNotConfigured)
}

func TestService_SenderFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("relay down")}
	svc := NewService(sender, "support@example.com", 10*time.Minute, logger.NewNop())

	err := svc.SendPasswordChanged(context.Background(), "a@example.com", "Ann")
	assert.EqualError(t, err, "relay down")
}

type fakeDialer struct {
	messages []*gomail.Message
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.messages = append(f.messages, m...)
	return nil
}

func TestSMTPSender_Headers(t *testing.T) {
	assert.Nil(t, NewSMTPSender(&config.EmailConfig{}))

	sender := NewSMTPSender(&config.EmailConfig{
		SMTPHost:    "smtp.example.com",
		SMTPPort:    587,
		FromAddress: "noreply@example.com",
		FromName:    "Marketplace",
	})
	require.NotNil(t, sender)
	d := &fakeDialer{}
	sender.dialer = d

	err := sender.Send(context.Background(), &Message{
		To:      "a@example.com",
		ReplyTo: "b@example.com",
		Subject: "Hi",
		Text:    "body",
	})
	require.NoError(t, err)
	require.Len(t, d.messages, 1)

	m := d.messages[0]
	assert.Equal(t, []string{"a@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hi"}, m.GetHeader("Subject"))
	assert.Len(t, m.GetHeader("Reply-To"), 1)
	assert.Contains(t, m.GetHeader("Reply-To")[0], "b@example.com")
}

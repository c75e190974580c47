package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain/contact"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/services/content"
)

type recordingMailer struct {
	sent []contact.Message
	err  error
}

func (m *recordingMailer) SendContactMessage(_ context.Context, msg contact.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestSendContactMessage_StripsMarkup(t *testing.T) {
	mailer := &recordingMailer{}
	uc := NewSendContactMessageUseCase(mailer, content.NewRenderer(), logger.NewNop())

	err := uc.Execute(context.Background(), SendContactMessageCommand{
		FullName:    "Jane <b>Doe</b>",
		Email:       "jane@example.com",
		Subject:     "Question",
		Description: "<script>alert(1)</script>Hello &amp; thanks",
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Jane Doe", mailer.sent[0].FullName)
	assert.Equal(t, "Hello & thanks", mailer.sent[0].Description)
}

func TestSendContactMessage_RequiresAllFields(t *testing.T) {
	mailer := &recordingMailer{}
	uc := NewSendContactMessageUseCase(mailer, content.NewRenderer(), logger.NewNop())

	err := uc.Execute(context.Background(), SendContactMessageCommand{FullName: "Jane", Email: "jane@example.com", Subject: "<i></i>", Description: "x"})
	assert.Equal(t, 400, appErrors.GetAppError(err).Code)
	assert.Empty(t, mailer.sent)
}

func TestSendContactMessage_DeliveryFailure(t *testing.T) {
	uc := NewSendContactMessageUseCase(&recordingMailer{err: errors.New("smtp down")}, content.NewRenderer(), logger.NewNop())

	err := uc.Execute(context.Background(), SendContactMessageCommand{FullName: "Jane", Email: "jane@example.com", Subject: "s", Description: "d"})
	require.Error(t, err)
	assert.Nil(t, appErrors.GetAppError(err))
}

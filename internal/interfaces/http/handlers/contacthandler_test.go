package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	contactUsecases "marketplace/internal/application/contact/usecases"
	"marketplace/internal/interfaces/http/handlers/testutil"
	"marketplace/internal/shared/errors"
)

type mockSendContactUC struct {
	got    contactUsecases.SendContactMessageCommand
	called bool
	err    error
}

func (m *mockSendContactUC) Execute(_ context.Context, cmd contactUsecases.SendContactMessageCommand) error {
	m.got = cmd
	m.called = true
	return m.err
}

func TestContactHandler_SendMessage(t *testing.T) {
	valid := ContactRequest{FullName: "Rahim Uddin", Email: "rahim@example.com", Subject: "Hello", Description: "I have a question"}

	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantStatus int
		wantCalled bool
	}{
		{name: "success", body: valid, wantStatus: http.StatusOK, wantCalled: true},
		{name: "missing subject", body: ContactRequest{FullName: "a", Email: "a@example.com", Description: "d"}, wantStatus: http.StatusBadRequest},
		{name: "invalid email", body: ContactRequest{FullName: "a", Email: "nope", Subject: "s", Description: "d"}, wantStatus: http.StatusBadRequest},
		{name: "mailer failure", body: valid, ucErr: errors.NewInternalError("Failed to send message"), wantStatus: http.StatusInternalServerError, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockSendContactUC{err: tt.ucErr}
			h := NewContactHandler(uc, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/contacts", tt.body)
			h.SendMessage(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, uc.called)
			if tt.wantCalled {
				assert.Equal(t, "rahim@example.com", uc.got.Email)
			}
		})
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		typ  ErrorType
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{"bad request", NewBadRequestError("bad"), http.StatusBadRequest, ErrorTypeBadRequest},
		{"unauthorized", NewUnauthorizedError("no"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{"forbidden", NewForbiddenError("no"), http.StatusForbidden, ErrorTypeForbidden},
		{"not found", NewNotFoundError("gone"), http.StatusNotFound, ErrorTypeNotFound},
		{"conflict", NewConflictError("dup"), http.StatusConflict, ErrorTypeConflict},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, ErrorTypeTooManyRequests},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.typ, tt.err.Type)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: Plan not found", NewNotFoundError("Plan not found").Error())
	assert.Equal(t, "conflict: exists (email; name)", NewConflictError("exists", "email", "name").Error())
}

func TestGetAppError_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFoundError("Store not found!"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'a' for key 'email'")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(stderrors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusUnprocessableEntity},
		{"not found", NewNotFoundError("todo"), ErrorTypeNotFound, http.StatusNotFound},
		{"too large", NewTooLargeError(16), ErrorTypeTooLarge, http.StatusRequestEntityTooLarge},
		{"internal", NewInternalError("oops"), ErrorTypeInternal, http.StatusInternalServerError},
		{"unavailable", NewUnavailableError("eventbridge"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{"external", NewExternalError("eventbridge", errors.New("x")), ErrorTypeExternal, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.StackTrace)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: todo not found", NewNotFoundError("todo").Error())

	cause := errors.New("disk full")
	err := NewInternalError("write failed").WithCause(cause)
	assert.Equal(t, "INTERNAL: write failed (caused by: disk full)", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("query handler failed: %w", NewNotFoundError("todo"))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsUnavailable(wrapped))
	assert.NotNil(t, GetAppError(wrapped))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

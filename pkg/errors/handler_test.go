package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler_Handle_AppError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewErrorHandler(zap.New(core), false)

	req := httptest.NewRequest(http.MethodPost, "/todos", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()

	h.Handle(rec, req, NewValidationError("request body does not match the todo schema").
		WithCode("SCHEMA_MISMATCH").
		WithDetails(map[string]interface{}{"id": "expected integer"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Error)
	assert.Equal(t, "VALIDATION", resp.Type)
	assert.Equal(t, "SCHEMA_MISMATCH", resp.Code)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, map[string]interface{}{"id": "expected integer"}, resp.Details)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestErrorHandler_Handle_HidesInternalMessages(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/todos", nil), NewInternalError("secret detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "An internal error occurred", resp.Message)
	assert.Nil(t, resp.Details)
}

func TestErrorHandler_Handle_DebugMode(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), true)

	t.Run("Should expose internal messages and the stack trace", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), NewInternalError("secret detail"))

		resp := decode(t, rec)
		assert.Equal(t, "secret detail", resp.Message)
		assert.Contains(t, resp.Details, "stack_trace")
	})

	t.Run("Should not mutate the original details", func(t *testing.T) {
		appErr := NewValidationError("bad").WithDetails(map[string]interface{}{"id": "x"})
		h.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), appErr)

		assert.NotContains(t, appErr.Details, "stack_trace")
	})

	t.Run("Should expose plain error text", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("plain failure"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "plain failure", decode(t, rec).Message)
	})
}

func TestErrorHandler_Handle_PlainError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewErrorHandler(zap.New(core), false)
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("plain failure"))

	resp := decode(t, rec)
	assert.Equal(t, "INTERNAL", resp.Type)
	assert.Equal(t, "An internal error occurred", resp.Message)
	assert.Equal(t, 1, logs.FilterMessage("Unhandled error").Len())
}

func TestErrorHandler_HandleStatus(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)

	tests := []struct {
		status   int
		wantType string
	}{
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{http.StatusServiceUnavailable, "UNAVAILABLE"},
		{http.StatusTeapot, "INTERNAL"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.HandleStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.status, "message")

		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.wantType, decode(t, rec).Type)
	}
}

func TestErrorHandler_Middleware(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)

	t.Run("Should turn panics into 500 responses", func(t *testing.T) {
		handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL", decode(t, rec).Type)
	})

	t.Run("Should re-raise ErrAbortHandler", func(t *testing.T) {
		handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

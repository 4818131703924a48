package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Property"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Booking", 7), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"conflict", Conflict("in use"), CodeConflict, http.StatusConflict},
		{"booking conflict", BookingConflict("overlap"), CodeConflict, http.StatusBadRequest},
		{"internal", Internal("boom", errors.New("db down")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.StatusCode())
		})
	}
}

func TestNotFoundWithIDDetails(t *testing.T) {
	err := NotFoundWithID("Property", 42)

	assert.Equal(t, "Property not found", err.Message)
	assert.Equal(t, "Property", err.Details["resource"])
	assert.Equal(t, uint(42), err.Details["id"])
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Failed to list properties", cause)

	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAsAppErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", BookingConflict("overlap"))

	appErr := AsAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.True(t, IsAppError(wrapped))
	assert.True(t, HasCode(wrapped, CodeConflict))
}

func TestAsAppErrorFallsBackToInternal(t *testing.T) {
	plain := errors.New("something odd")

	appErr := AsAppError(plain)
	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.ErrorIs(t, appErr, plain)
	assert.False(t, IsAppError(plain))
}

func TestBodyOmitsCause(t *testing.T) {
	err := Internal("Failed", errors.New("secret dsn"))
	body := err.Body()

	assert.Equal(t, CodeInternal, body.Code)
	assert.Equal(t, "Failed", body.Message)
	assert.Nil(t, body.Details)
}

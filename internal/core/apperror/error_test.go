package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"invalid date range", NewInvalidDateRange("begin after end"), CodeInvalidDateRange, http.StatusBadRequest},
		{"not found", NewNotFound("customer", "abc"), CodeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorized("invalid credentials"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("no access"), CodeForbidden, http.StatusForbidden},
		{"conflict", NewConflict("duplicate"), CodeConflict, http.StatusConflict},
		{"concurrent modification", NewConcurrentModification("customer", "abc"), CodeConcurrentModification, http.StatusConflict},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad input").
		WithDetail("field", "name").
		WithDetail("value", 42)

	assert.Equal(t, "name", err.Details["field"])
	assert.Equal(t, 42, err.Details["value"])
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestInspectionThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get customer: %w", NewNotFound("customer", "abc"))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestIsInvalidDateRange(t *testing.T) {
	assert.True(t, IsInvalidDateRange(NewInvalidDateRange("bad window")))
	assert.False(t, IsInvalidDateRange(NewValidation("bad input")))
	assert.False(t, IsInvalidDateRange(errors.New("plain")))
}

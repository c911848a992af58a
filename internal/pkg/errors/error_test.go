package xerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, MsgUnexpected},
		{"detail wins", NewAPIError(http.StatusBadRequest, ProblemDetails{Title: "Bad", Detail: "CPF already registered"}), "CPF already registered"},
		{"title when no detail", NewAPIError(http.StatusConflict, ProblemDetails{Title: "Conflict"}), "Conflict"},
		{"401 without body", NewAPIError(http.StatusUnauthorized, ProblemDetails{}), MsgInvalidCredentials},
		{"400 without body", NewAPIError(http.StatusBadRequest, ProblemDetails{}), MsgInvalidData},
		{"500 falls back to transport message", NewAPIError(http.StatusInternalServerError, ProblemDetails{}), "request failed with status code 500"},
		{"wrapped api error", fmt.Errorf("login: %w", NewAPIError(http.StatusUnauthorized, ProblemDetails{})), MsgInvalidCredentials},
		{"plain error", errors.New("dial tcp: connection refused"), "dial tcp: connection refused"},
		{"empty error text", errors.New(""), MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(fmt.Errorf("wrap: %w", NewAPIError(http.StatusUnauthorized, ProblemDetails{}))))
	assert.False(t, IsUnauthorized(NewAPIError(http.StatusForbidden, ProblemDetails{})))
	assert.False(t, IsUnauthorized(errors.New("boom")))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NewAPIError(http.StatusNotFound, ProblemDetails{})))
	assert.Equal(t, 0, StatusCode(errors.New("boom")))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("login without token: %w", ErrInvalidInput)
	assert.True(t, Is(err, ErrInvalidInput))
	assert.False(t, Is(err, ErrNotAuthenticated))
}

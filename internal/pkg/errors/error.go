package xerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common reusable application errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionResolving = errors.New("session is still resolving")
	ErrTooManyAttempts  = errors.New("too many login attempts, try again later")
)

// Fallback messages used by Message, in the order they are tried.
const (
	MsgInvalidCredentials = "invalid credentials"
	MsgInvalidData        = "invalid data provided"
	MsgUnexpected         = "an unexpected error occurred, please try again"
)

// ProblemDetails is the error body the backend answers with (RFC 7807 shape).
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   int    `json:"status,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// APIError is returned for every non-2xx backend response.
type APIError struct {
	StatusCode int
	Problem    ProblemDetails
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// NewAPIError builds an APIError with the generic transport message.
func NewAPIError(status int, problem ProblemDetails) *APIError {
	return &APIError{
		StatusCode: status,
		Problem:    problem,
		Message:    fmt.Sprintf("request failed with status code %d", status),
	}
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Message extracts the best user-facing message from err.
func Message(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Problem.Detail != "":
			return apiErr.Problem.Detail
		case apiErr.Problem.Title != "":
			return apiErr.Problem.Title
		case apiErr.StatusCode == http.StatusUnauthorized:
			return MsgInvalidCredentials
		case apiErr.StatusCode == http.StatusBadRequest:
			return MsgInvalidData
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnexpected
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

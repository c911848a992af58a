// internal/pkg/session/types.go
package session

import (
	"time"

	"rental-console/internal/domain/auth"
)

// State is the position of the session in its lifecycle.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateResolving     State = "resolving"
	StateAuthenticated State = "authenticated"
	// StateRejected is only ever published, once, when a profile fetch fails.
	// The stored state right after is StateAnonymous.
	StateRejected State = "rejected"
)

// Session is a point-in-time copy of the manager's state.
type Session struct {
	Token           string     `json:"-"`
	User            *auth.User `json:"user"`
	State           State      `json:"state"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	IsLoading       bool       `json:"isLoading"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

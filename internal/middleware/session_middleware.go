// internal/middleware/session_middleware.go
package middleware

import (
	"net/http"

	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/response"
	"rental-console/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPath is where the browser is sent when the session is anonymous.
const LoginPath = "/login"

// SessionState is the part of the session manager the guards need.
type SessionState interface {
	Snapshot() session.Session
	Refetch()
}

type SessionMiddleware struct {
	sessions SessionState
	logger   *zap.Logger
}

func NewSessionMiddleware(sessions SessionState, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, logger: logger}
}

// RequireSession lets authenticated requests through. While a persisted token
// is still being resolved it answers 503 so the browser retries; anonymous
// requests get 401 with the login redirect.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := m.sessions.Snapshot()

		switch snap.State {
		case session.StateAuthenticated:
			c.Set(ctxUserKey, snap.User)
			c.Set(ctxUserIDKey, snap.User.ID)
			c.Next()
		case session.StateResolving:
			c.Header("Retry-After", "1")
			response.Error(c, http.StatusServiceUnavailable, "session is still loading", xerrors.ErrSessionResolving)
		default:
			response.Unauthorized(c, "not authenticated", gin.H{"redirect": LoginPath})
		}
	}
}

// ReconcileOnUnauthorized re-validates the session when the backend rejected
// the token during a guarded call. 401s the console answers on its own are
// ignored. A failed re-fetch logs the console out.
func (m *SessionMiddleware) ReconcileOnUnauthorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if xerrors.IsUnauthorized(e.Err) {
				m.logger.Info("backend rejected the session token, re-validating",
					zap.String("path", c.Request.URL.Path),
				)
				m.sessions.Refetch()
				return
			}
		}
	}
}

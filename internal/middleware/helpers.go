// internal/middleware/helpers.go
package middleware

import (
	"rental-console/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserKey      = "user"
	ctxUserIDKey    = "user_id"
	ctxRequestIDKey = "request_id"
)

// GetUser returns the session user set by RequireSession.
func GetUser(c *gin.Context) (*auth.User, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*auth.User)
	return user, ok && user != nil
}

// GetUserID returns the id of the session user.
func GetUserID(c *gin.Context) (string, bool) {
	return getString(c, ctxUserIDKey)
}

// GetRequestID returns the id stamped by LoggingMiddleware.
func GetRequestID(c *gin.Context) string {
	id, _ := getString(c, ctxRequestIDKey)
	return id
}

func getString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

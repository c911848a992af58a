// internal/pkg/jwt/claims.go
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend's access token the console reads.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"unique_name,omitempty"`
	jwt.RegisteredClaims
}

// Expiry returns the exp claim, if present.
func (c *Claims) Expiry() (time.Time, bool) {
	if c.ExpiresAt == nil {
		return time.Time{}, false
	}
	return c.ExpiresAt.Time, true
}

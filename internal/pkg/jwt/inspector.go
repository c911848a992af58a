// internal/pkg/jwt/inspector.go
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Inspector reads backend tokens without verifying them. The console holds no
// signing key; the backend stays the only judge of a token's validity, and the
// claims are used for display only.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// Inspect decodes the claims of tokenString.
func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// Expiry returns the exp claim of tokenString. Opaque tokens report false.
func (i *Inspector) Expiry(tokenString string) (time.Time, bool) {
	claims, err := i.Inspect(tokenString)
	if err != nil {
		return time.Time{}, false
	}
	return claims.Expiry()
}

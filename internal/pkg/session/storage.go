// internal/pkg/session/storage.go
package session

import "context"

// Keys written to durable storage. Both are written on login and removed together on logout.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Storage is the durable key/value surface the session survives restarts with.
// Get reports ok=false for a missing key; Delete ignores missing keys.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

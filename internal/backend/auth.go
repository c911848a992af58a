// internal/backend/auth.go
package backend

import (
	"context"
	"net/http"

	"rental-console/internal/domain/auth"
)

func (c *Client) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	var resp auth.LoginResponse
	if err := c.do(ctx, "", http.MethodPost, "/Auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.RegisterResponse, error) {
	var resp auth.RegisterResponse
	if err := c.do(ctx, "", http.MethodPost, "/Auth/registrar", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser resolves token into its user. It takes the token explicitly so
// the session manager can validate a token it has not adopted yet.
func (c *Client) CurrentUser(ctx context.Context, token string) (*auth.User, error) {
	var user auth.User
	if err := c.do(ctx, token, http.MethodGet, "/Usuarios/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateCurrentUser(ctx context.Context, req *auth.UpdateUserRequest) (*auth.User, error) {
	var user auth.User
	if err := c.put(ctx, "/Usuarios/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ChangePassword(ctx context.Context, req *auth.ChangePasswordRequest) error {
	return c.put(ctx, "/Usuarios/alterar-senha", req, nil)
}

// ChangeAuthPassword uses the auth controller's variant of the password change.
func (c *Client) ChangeAuthPassword(ctx context.Context, req *auth.ChangePasswordRequest) error {
	return c.put(ctx, "/Auth/alterar-senha", req, nil)
}

// ValidateToken asks the backend whether the current token is still accepted.
func (c *Client) ValidateToken(ctx context.Context) error {
	return c.get(ctx, "/Auth/validar", nil, nil)
}

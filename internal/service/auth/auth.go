// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"net/http"

	"rental-console/internal/domain/auth"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/session"

	"go.uber.org/zap"
)

// Backend is the part of the REST client the auth flows call.
type Backend interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	Register(ctx context.Context, req *auth.RegisterRequest) (*auth.RegisterResponse, error)
	UpdateCurrentUser(ctx context.Context, req *auth.UpdateUserRequest) (*auth.User, error)
	ChangePassword(ctx context.Context, req *auth.ChangePasswordRequest) error
	ChangeAuthPassword(ctx context.Context, req *auth.ChangePasswordRequest) error
	ValidateToken(ctx context.Context) error
}

// Sessions is the session manager surface the auth flows drive.
type Sessions interface {
	Login(ctx context.Context, token string, user *auth.User) error
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, user *auth.User) error
	Snapshot() session.Session
}

type AuthService struct {
	backend  Backend
	sessions Sessions
	limiter  session.LoginLimiter
	logger   *zap.Logger
}

func NewAuthService(backend Backend, sessions Sessions, limiter session.LoginLimiter, logger *zap.Logger) *AuthService {
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		limiter:  limiter,
		logger:   logger,
	}
}

// ========== Login / Logout ==========

// Login exchanges credentials for a token and starts the console session.
// A backend rejection leaves the current session untouched.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, clientIP string) (session.Session, error) {
	if s.limiter != nil {
		allowed, remaining, err := s.limiter.CheckLoginAttempt(ctx, clientIP, req.Email)
		if err != nil {
			s.logger.Warn("login rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			s.logger.Warn("login attempts exhausted", zap.String("email", req.Email), zap.String("ip", clientIP))
			return session.Session{}, xerrors.ErrTooManyAttempts
		} else {
			s.logger.Debug("login attempt", zap.String("email", req.Email), zap.Int64("remaining", remaining))
		}
	}

	resp, err := s.backend.Login(ctx, req)
	if err != nil {
		s.logger.Info("login rejected by backend", zap.String("email", req.Email), zap.Error(err))
		return session.Session{}, err
	}

	user := resp.User
	if err := s.sessions.Login(ctx, resp.Token, &user); err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			return session.Session{}, fmt.Errorf("backend returned no token: %w", err)
		}
		// the in-memory session is live; only persistence failed
		s.logger.Error("session not persisted", zap.String("user_id", user.ID), zap.Error(err))
	}

	if s.limiter != nil {
		if err := s.limiter.ResetLoginAttempts(ctx, clientIP, req.Email); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	return s.sessions.Snapshot(), nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// ========== Account ==========

func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.RegisterResponse, error) {
	resp, err := s.backend.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("account registered", zap.String("user_id", resp.ID))
	return resp, nil
}

// CurrentSession returns the session as the browser sees it.
func (s *AuthService) CurrentSession() session.Session {
	return s.sessions.Snapshot()
}

// UpdateProfile saves the profile on the backend, then hands the result to the
// session, which re-fetches it. On backend failure the session user is kept.
func (s *AuthService) UpdateProfile(ctx context.Context, req *auth.UpdateUserRequest) (*auth.User, error) {
	user, err := s.backend.UpdateCurrentUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update session user: %w", err)
	}
	return user, nil
}

// ChangePassword uses the users controller and falls back to the auth
// controller's variant when the backend does not expose the former.
func (s *AuthService) ChangePassword(ctx context.Context, req *auth.ChangePasswordRequest) error {
	err := s.backend.ChangePassword(ctx, req)
	switch xerrors.StatusCode(err) {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		s.logger.Info("users password endpoint unavailable, using auth endpoint",
			zap.Int("status", xerrors.StatusCode(err)),
		)
		err = s.backend.ChangeAuthPassword(ctx, req)
	}
	if err != nil {
		return err
	}
	s.logger.Info("password changed")
	return nil
}

// ValidateToken asks the backend whether the current token is still valid.
func (s *AuthService) ValidateToken(ctx context.Context) error {
	return s.backend.ValidateToken(ctx)
}

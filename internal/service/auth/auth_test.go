package auth

import (
	"context"
	"testing"
	"time"

	"rental-console/internal/domain/auth"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	users    map[string]auth.User
	password string
	updated  *auth.User

	usersPasswordErr error
	passwordCalls    []string
}

func (f *fakeBackend) Login(_ context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if req.Password != f.password {
		return nil, xerrors.NewAPIError(401, xerrors.ProblemDetails{Detail: "Email ou senha inválidos"})
	}
	return &auth.LoginResponse{Token: "tok-1", User: f.users["tok-1"]}, nil
}

func (f *fakeBackend) Register(_ context.Context, req *auth.RegisterRequest) (*auth.RegisterResponse, error) {
	return &auth.RegisterResponse{ID: "2", Name: req.Name, Email: req.Email}, nil
}

func (f *fakeBackend) UpdateCurrentUser(_ context.Context, req *auth.UpdateUserRequest) (*auth.User, error) {
	u := f.users["tok-1"]
	u.Name = req.Name
	u.Phone = req.Phone
	f.users["tok-1"] = u
	return &u, nil
}

func (f *fakeBackend) ChangePassword(context.Context, *auth.ChangePasswordRequest) error {
	f.passwordCalls = append(f.passwordCalls, "/Usuarios/alterar-senha")
	return f.usersPasswordErr
}

func (f *fakeBackend) ChangeAuthPassword(context.Context, *auth.ChangePasswordRequest) error {
	f.passwordCalls = append(f.passwordCalls, "/Auth/alterar-senha")
	return nil
}

func (f *fakeBackend) ValidateToken(context.Context) error { return nil }

func (f *fakeBackend) CurrentUser(_ context.Context, token string) (*auth.User, error) {
	if u, ok := f.users[token]; ok {
		return &u, nil
	}
	return nil, xerrors.NewAPIError(401, xerrors.ProblemDetails{})
}

func newService(t *testing.T) (*AuthService, *session.Manager, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{
		users:    map[string]auth.User{"tok-1": {ID: "1", Name: "Ana", Email: "ana@example.com"}},
		password: "Segura1",
	}
	sessions := session.NewManager(session.NewMemoryStorage(), backend, zap.NewNop())
	return NewAuthService(backend, sessions, session.NewMemoryRateLimiter(), zap.NewNop()), sessions, backend
}

func settle(t *testing.T, m *session.Manager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.WaitIdle(ctx))
}

func TestAuthService_Login(t *testing.T) {
	svc, sessions, _ := newService(t)

	snap, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "ana@example.com", Password: "Segura1"}, "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "Ana", snap.User.Name)

	settle(t, sessions)
	assert.True(t, sessions.IsAuthenticated())
	assert.Equal(t, "tok-1", sessions.Token())
}

func TestAuthService_RejectedLoginKeepsSession(t *testing.T) {
	svc, sessions, _ := newService(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "ana@example.com", Password: "errada1"}, "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, "Email ou senha inválidos", xerrors.Message(err))
	assert.False(t, sessions.IsAuthenticated())
	assert.Empty(t, sessions.Token())
}

func TestAuthService_LoginRateLimited(t *testing.T) {
	svc, _, _ := newService(t)
	req := &auth.LoginRequest{Email: "ana@example.com", Password: "errada1"}

	for i := 0; i < 5; i++ {
		_, err := svc.Login(context.Background(), req, "10.0.0.9")
		require.Error(t, err)
		assert.NotErrorIs(t, err, xerrors.ErrTooManyAttempts)
	}
	_, err := svc.Login(context.Background(), req, "10.0.0.9")
	assert.ErrorIs(t, err, xerrors.ErrTooManyAttempts)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, sessions, _ := newService(t)
	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "ana@example.com", Password: "Segura1"}, "127.0.0.1")
	require.NoError(t, err)
	settle(t, sessions)

	user, err := svc.UpdateProfile(context.Background(), &auth.UpdateUserRequest{Name: "Ana Lima", Phone: "11999990000"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", user.Name)

	settle(t, sessions)
	snap := svc.CurrentSession()
	assert.Equal(t, "Ana Lima", snap.User.Name)
	assert.Equal(t, "tok-1", snap.Token)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.CurrentSession().IsAuthenticated)
}

func TestAuthService_ChangePassword(t *testing.T) {
	req := &auth.ChangePasswordRequest{}

	tests := []struct {
		name      string
		usersErr  error
		wantErr   bool
		wantCalls []string
	}{
		{"users endpoint succeeds", nil, false, []string{"/Usuarios/alterar-senha"}},
		{"falls back on 404", xerrors.NewAPIError(404, xerrors.ProblemDetails{}), false,
			[]string{"/Usuarios/alterar-senha", "/Auth/alterar-senha"}},
		{"falls back on 405", xerrors.NewAPIError(405, xerrors.ProblemDetails{}), false,
			[]string{"/Usuarios/alterar-senha", "/Auth/alterar-senha"}},
		{"wrong current password is surfaced", xerrors.NewAPIError(400, xerrors.ProblemDetails{Detail: "Senha atual incorreta"}), true,
			[]string{"/Usuarios/alterar-senha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, backend := newService(t)
			backend.usersPasswordErr = tt.usersErr

			err := svc.ChangePassword(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Senha atual incorreta", xerrors.Message(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, backend.passwordCalls)
		})
	}
}

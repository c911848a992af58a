package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-console/internal/domain/auth"
	"rental-console/internal/middleware"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/response"
	"rental-console/internal/pkg/session"
	"rental-console/internal/pkg/validation"
	authUsecase "rental-console/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			panic(err)
		}
	}
}

type fakeBackend struct {
	user     auth.User
	password string

	authPasswordCalls int
}

func (f *fakeBackend) Login(_ context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if req.Password != f.password {
		return nil, xerrors.NewAPIError(http.StatusUnauthorized, xerrors.ProblemDetails{Detail: "Email ou senha inválidos"})
	}
	return &auth.LoginResponse{Token: "tok-1", User: f.user}, nil
}

func (f *fakeBackend) Register(_ context.Context, req *auth.RegisterRequest) (*auth.RegisterResponse, error) {
	return &auth.RegisterResponse{ID: "2", Name: req.Name, Email: req.Email}, nil
}

func (f *fakeBackend) UpdateCurrentUser(_ context.Context, req *auth.UpdateUserRequest) (*auth.User, error) {
	u := f.user
	u.Name = req.Name
	return &u, nil
}

func (f *fakeBackend) ChangePassword(context.Context, *auth.ChangePasswordRequest) error {
	return xerrors.NewAPIError(http.StatusNotFound, xerrors.ProblemDetails{})
}

func (f *fakeBackend) ChangeAuthPassword(context.Context, *auth.ChangePasswordRequest) error {
	f.authPasswordCalls++
	return nil
}

func (f *fakeBackend) ValidateToken(context.Context) error { return nil }

func (f *fakeBackend) CurrentUser(_ context.Context, token string) (*auth.User, error) {
	if token != "tok-1" {
		return nil, xerrors.NewAPIError(http.StatusUnauthorized, xerrors.ProblemDetails{})
	}
	u := f.user
	return &u, nil
}

func setup(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	r, sessions, _ := setupWithBackend(t)
	return r, sessions
}

func setupWithBackend(t *testing.T) (*gin.Engine, *session.Manager, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{user: auth.User{ID: "1", Name: "Ana", Email: "ana@example.com"}, password: "Segura1"}
	sessions := session.NewManager(session.NewMemoryStorage(), backend, zap.NewNop())
	t.Cleanup(sessions.Close)

	svc := authUsecase.NewAuthService(backend, sessions, session.NewMemoryRateLimiter(), zap.NewNop())
	h := NewAuthHandler(svc, zap.NewNop())
	guard := middleware.NewSessionMiddleware(sessions, zap.NewNop())

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/session", h.Session)
	private := r.Group("/auth", guard.RequireSession())
	private.GET("/me", h.Me)
	private.PUT("/me", h.UpdateMe)
	private.PUT("/password", h.ChangePassword)
	return r, sessions, backend
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func settle(t *testing.T, m *session.Manager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.WaitIdle(ctx))
}

func TestLogin_Flow(t *testing.T) {
	r, sessions := setup(t)

	w, _ := do(r, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := do(r, http.MethodPost, "/auth/login", `{"email":"ana@example.com","senha":"Segura1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["isAuthenticated"])
	assert.NotContains(t, w.Body.String(), "tok-1")

	settle(t, sessions)
	w, resp = do(r, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", resp.Data.(map[string]interface{})["nome"])

	w, _ = do(r, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, resp = do(r, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(session.StateAnonymous), resp.Data.(map[string]interface{})["state"])
}

func TestLogin_Errors(t *testing.T) {
	r, sessions := setup(t)

	w, resp := do(r, http.MethodPost, "/auth/login", `{"email":"ana","senha":"1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, resp.Data, 2)

	w, resp = do(r, http.MethodPost, "/auth/login", `{"email":"ana@example.com","senha":"Errada1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Email ou senha inválidos", resp.Message)
	assert.False(t, sessions.IsAuthenticated())

	for i := 0; i < 4; i++ {
		do(r, http.MethodPost, "/auth/login", `{"email":"ana@example.com","senha":"Errada1"}`)
	}
	w, _ = do(r, http.MethodPost, "/auth/login", `{"email":"ana@example.com","senha":"Segura1"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRegister_Validation(t *testing.T) {
	r, _ := setup(t)

	w, resp := do(r, http.MethodPost, "/auth/register", `{"nome":"Ana Souza","email":"ana@example.com","telefone":"11987654321","senha":"fraca12","confirmarSenha":"fraca12"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := resp.Data.([]interface{})
	require.Len(t, fields, 1)
	assert.Equal(t, "senha", fields[0].(map[string]interface{})["field"])

	w, _ = do(r, http.MethodPost, "/auth/register", `{"nome":"Ana Souza","email":"ana@example.com","telefone":"11987654321","senha":"Segura1","confirmarSenha":"Segura1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateMe(t *testing.T) {
	r, sessions := setup(t)

	do(r, http.MethodPost, "/auth/login", `{"email":"ana@example.com","senha":"Segura1"}`)
	settle(t, sessions)

	w, resp := do(r, http.MethodPut, "/auth/me", `{"nome":"Ana Maria","telefone":"11987654321"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana Maria", resp.Data.(map[string]interface{})["nome"])
	settle(t, sessions)
	assert.True(t, sessions.IsAuthenticated())
}

func TestChangePassword(t *testing.T) {
	r, sessions, backend := setupWithBackend(t)

	do(r, http.MethodPost, "/auth/login", `{"email":"ana@example.com","senha":"Segura1"}`)
	settle(t, sessions)

	w, resp := do(r, http.MethodPut, "/auth/password", `{"senhaAtual":"Segura1","novaSenha":"fraca12","confirmarNovaSenha":"fraca12"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, resp.Data, 1)
	assert.Zero(t, backend.authPasswordCalls)

	w, _ = do(r, http.MethodPut, "/auth/password", `{"senhaAtual":"Segura1","novaSenha":"Segura2","confirmarNovaSenha":"Segura2"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, backend.authPasswordCalls)
}

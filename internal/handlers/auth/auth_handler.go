// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"rental-console/internal/domain/auth"
	"rental-console/internal/middleware"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/response"
	authUsecase "rental-console/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Registration ==========

// Register creates an account on the backend. It does not start a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if !response.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("registration failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		response.BackendError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", resp)
}

// ========== Login / Logout ==========

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !response.BindJSON(c, &req) {
		return
	}

	snapshot, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if errors.Is(err, xerrors.ErrTooManyAttempts) {
			response.Error(c, http.StatusTooManyRequests, err.Error(), nil)
			return
		}
		h.logger.Info("login failed",
			zap.String("email", req.Email),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		response.BackendError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", snapshot)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "session cleared but storage cleanup failed", err)
		return
	}
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Session returns the current session snapshot. It is public so the browser can
// poll it while a profile fetch is resolving.
func (h *AuthHandler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, "session retrieved", h.authService.CurrentSession())
}

// ========== Profile ==========

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Unauthorized(c, xerrors.ErrNotAuthenticated.Error())
		return
	}
	response.Success(c, http.StatusOK, "profile retrieved", user)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req auth.UpdateUserRequest
	if !response.BindJSON(c, &req) {
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotAuthenticated) {
			response.Unauthorized(c, err.Error(), gin.H{"redirect": "/login"})
			return
		}
		userID, _ := middleware.GetUserID(c)
		h.logger.Warn("profile update failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		response.BackendError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req auth.ChangePasswordRequest
	if !response.BindJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), &req); err != nil {
		response.BackendError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "password changed", nil)
}

// Validate asks the backend whether the session token is still accepted.
func (h *AuthHandler) Validate(c *gin.Context) {
	if err := h.authService.ValidateToken(c.Request.Context()); err != nil {
		response.BackendError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "token valid", gin.H{"valid": true})
}

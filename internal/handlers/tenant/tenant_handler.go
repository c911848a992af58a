// internal/handlers/tenant/tenant_handler.go
package tenant

import (
	"context"
	"net/http"

	"rental-console/internal/domain/tenant"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListTenants(ctx context.Context) ([]tenant.Tenant, error)
	SearchTenants(ctx context.Context, params tenant.SearchParams) ([]tenant.Tenant, error)
	GetTenant(ctx context.Context, id string) (*tenant.Tenant, error)
	CreateTenant(ctx context.Context, req *tenant.CreateTenantRequest) (*tenant.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req *tenant.UpdateTenantRequest) (*tenant.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	MarkTenantCompliant(ctx context.Context, id string) error
	MarkTenantDefaulting(ctx context.Context, id string) error
}

type TenantHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewTenantHandler(backend Backend, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{backend: backend, logger: logger}
}

func (h *TenantHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("tenant request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

func (h *TenantHandler) List(c *gin.Context) {
	list, err := h.backend.ListTenants(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.Success(c, http.StatusOK, "tenants retrieved", list)
}

func (h *TenantHandler) Search(c *gin.Context) {
	var params tenant.SearchParams
	if !response.BindQuery(c, &params) {
		return
	}

	list, err := h.backend.SearchTenants(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "search", err)
		return
	}
	response.Success(c, http.StatusOK, "tenants retrieved", list)
}

// Options lists tenants in good standing; defaulting tenants cannot sign new leases.
func (h *TenantHandler) Options(c *gin.Context) {
	list, err := h.backend.ListTenants(c.Request.Context())
	if err != nil {
		h.fail(c, "options", err)
		return
	}
	response.Success(c, http.StatusOK, "tenant options retrieved", tenant.Options(list))
}

func (h *TenantHandler) Get(c *gin.Context) {
	t, err := h.backend.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "tenant retrieved", t)
}

func (h *TenantHandler) Create(c *gin.Context) {
	var req tenant.CreateTenantRequest
	if !response.BindJSON(c, &req) {
		return
	}

	t, err := h.backend.CreateTenant(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "tenant created", t)
}

func (h *TenantHandler) Update(c *gin.Context) {
	var req tenant.UpdateTenantRequest
	if !response.BindJSON(c, &req) {
		return
	}

	t, err := h.backend.UpdateTenant(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "tenant updated", t)
}

func (h *TenantHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteTenant(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "tenant deleted", nil)
}

func (h *TenantHandler) MarkCompliant(c *gin.Context) {
	if err := h.backend.MarkTenantCompliant(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "mark compliant", err)
		return
	}
	response.Success(c, http.StatusOK, "tenant marked compliant", nil)
}

func (h *TenantHandler) MarkDefaulting(c *gin.Context) {
	if err := h.backend.MarkTenantDefaulting(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "mark defaulting", err)
		return
	}
	response.Success(c, http.StatusOK, "tenant marked defaulting", nil)
}

// internal/handlers/property/property_handler.go
package property

import (
	"context"
	"net/http"

	"rental-console/internal/domain/property"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Backend is the slice of the REST client the property pages use.
type Backend interface {
	ListProperties(ctx context.Context) ([]property.Property, error)
	SearchProperties(ctx context.Context, params property.SearchParams) ([]property.Property, error)
	GetProperty(ctx context.Context, id string) (*property.Property, error)
	CreateProperty(ctx context.Context, req *property.CreatePropertyRequest) (*property.Property, error)
	UpdateProperty(ctx context.Context, id string, req *property.UpdatePropertyRequest) (*property.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	ActivateProperty(ctx context.Context, id string) error
	DeactivateProperty(ctx context.Context, id string) error
}

type PropertyHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewPropertyHandler(backend Backend, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{backend: backend, logger: logger}
}

func (h *PropertyHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("property request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

// ========== Queries ==========

func (h *PropertyHandler) List(c *gin.Context) {
	list, err := h.backend.ListProperties(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.Success(c, http.StatusOK, "properties retrieved", list)
}

func (h *PropertyHandler) Search(c *gin.Context) {
	var params property.SearchParams
	if !response.BindQuery(c, &params) {
		return
	}

	list, err := h.backend.SearchProperties(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "search", err)
		return
	}
	response.Success(c, http.StatusOK, "properties retrieved", list)
}

// Options lists active properties for select inputs.
func (h *PropertyHandler) Options(c *gin.Context) {
	list, err := h.backend.ListProperties(c.Request.Context())
	if err != nil {
		h.fail(c, "options", err)
		return
	}
	response.Success(c, http.StatusOK, "property options retrieved", property.Options(list))
}

func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.backend.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "property retrieved", p)
}

// ========== Commands ==========

func (h *PropertyHandler) Create(c *gin.Context) {
	var req property.CreatePropertyRequest
	if !response.BindJSON(c, &req) {
		return
	}

	p, err := h.backend.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "property created", p)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	var req property.UpdatePropertyRequest
	if !response.BindJSON(c, &req) {
		return
	}

	p, err := h.backend.UpdateProperty(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "property updated", p)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "property deleted", nil)
}

func (h *PropertyHandler) Activate(c *gin.Context) {
	if err := h.backend.ActivateProperty(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "activate", err)
		return
	}
	response.Success(c, http.StatusOK, "property activated", nil)
}

func (h *PropertyHandler) Deactivate(c *gin.Context) {
	if err := h.backend.DeactivateProperty(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "deactivate", err)
		return
	}
	response.Success(c, http.StatusOK, "property deactivated", nil)
}

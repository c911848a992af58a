// internal/handlers/maintenance/maintenance_handler.go
package maintenance

import (
	"context"
	"net/http"

	"rental-console/internal/domain/maintenance"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListMaintenance(ctx context.Context) ([]maintenance.Maintenance, error)
	MaintenanceByProperty(ctx context.Context, propertyID string) ([]maintenance.Maintenance, error)
	GetMaintenance(ctx context.Context, id string) (*maintenance.Maintenance, error)
	CreateMaintenance(ctx context.Context, req *maintenance.CreateMaintenanceRequest) (*maintenance.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id string, req *maintenance.UpdateMaintenanceRequest) (*maintenance.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id string) error
	CompleteMaintenance(ctx context.Context, id string) error
}

type MaintenanceHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewMaintenanceHandler(backend Backend, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{backend: backend, logger: logger}
}

func (h *MaintenanceHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("maintenance request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	list, err := h.backend.ListMaintenance(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.Success(c, http.StatusOK, "maintenance retrieved", list)
}

func (h *MaintenanceHandler) ByProperty(c *gin.Context) {
	list, err := h.backend.MaintenanceByProperty(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		h.fail(c, "by property", err)
		return
	}
	response.Success(c, http.StatusOK, "maintenance retrieved", list)
}

func (h *MaintenanceHandler) Get(c *gin.Context) {
	m, err := h.backend.GetMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "maintenance retrieved", m)
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req maintenance.CreateMaintenanceRequest
	if !response.BindJSON(c, &req) {
		return
	}

	m, err := h.backend.CreateMaintenance(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "maintenance created", m)
}

func (h *MaintenanceHandler) Update(c *gin.Context) {
	var req maintenance.UpdateMaintenanceRequest
	if !response.BindJSON(c, &req) {
		return
	}

	m, err := h.backend.UpdateMaintenance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "maintenance updated", m)
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "maintenance deleted", nil)
}

// Complete marks the job done.
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	if err := h.backend.CompleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "complete", err)
		return
	}
	response.Success(c, http.StatusOK, "maintenance completed", nil)
}

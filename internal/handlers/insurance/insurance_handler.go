// internal/handlers/insurance/insurance_handler.go
package insurance

import (
	"context"
	"net/http"
	"time"

	"rental-console/internal/domain/insurance"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListInsurance(ctx context.Context, query insurance.Query) ([]insurance.Insurance, error)
	InsuranceByProperty(ctx context.Context, propertyID string) ([]insurance.Insurance, error)
	SearchInsurance(ctx context.Context, query insurance.Query) ([]insurance.Insurance, error)
	ExpiringInsurance(ctx context.Context) ([]insurance.Insurance, error)
	GetInsurance(ctx context.Context, id string) (*insurance.Insurance, error)
	CreateInsurance(ctx context.Context, req *insurance.CreateInsuranceRequest) (*insurance.Insurance, error)
	UpdateInsurance(ctx context.Context, id string, req *insurance.UpdateInsuranceRequest) (*insurance.Insurance, error)
	DeleteInsurance(ctx context.Context, id string) error
}

type InsuranceHandler struct {
	backend Backend
	logger  *zap.Logger
	now     func() time.Time
}

func NewInsuranceHandler(backend Backend, logger *zap.Logger) *InsuranceHandler {
	return &InsuranceHandler{backend: backend, logger: logger, now: time.Now}
}

func (h *InsuranceHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("insurance request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

// respondList answers with policies annotated with their coverage status.
func (h *InsuranceHandler) respondList(c *gin.Context, op string, list []insurance.Insurance, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	response.Success(c, http.StatusOK, "policies retrieved", insurance.NewViews(list, h.now()))
}

func (h *InsuranceHandler) List(c *gin.Context) {
	var q insurance.Query
	if !response.BindQuery(c, &q) {
		return
	}
	list, err := h.backend.ListInsurance(c.Request.Context(), q)
	h.respondList(c, "list", list, err)
}

func (h *InsuranceHandler) ByProperty(c *gin.Context) {
	list, err := h.backend.InsuranceByProperty(c.Request.Context(), c.Param("propertyId"))
	h.respondList(c, "by property", list, err)
}

func (h *InsuranceHandler) Search(c *gin.Context) {
	var q insurance.Query
	if !response.BindQuery(c, &q) {
		return
	}
	list, err := h.backend.SearchInsurance(c.Request.Context(), q)
	h.respondList(c, "search", list, err)
}

// Expiring lists policies ending within the next 30 days.
func (h *InsuranceHandler) Expiring(c *gin.Context) {
	list, err := h.backend.ExpiringInsurance(c.Request.Context())
	h.respondList(c, "expiring", list, err)
}

func (h *InsuranceHandler) Get(c *gin.Context) {
	i, err := h.backend.GetInsurance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "policy retrieved", insurance.NewView(*i, h.now()))
}

func (h *InsuranceHandler) Create(c *gin.Context) {
	var req insurance.CreateInsuranceRequest
	if !response.BindJSON(c, &req) {
		return
	}

	i, err := h.backend.CreateInsurance(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "policy created", insurance.NewView(*i, h.now()))
}

func (h *InsuranceHandler) Update(c *gin.Context) {
	var req insurance.UpdateInsuranceRequest
	if !response.BindJSON(c, &req) {
		return
	}

	i, err := h.backend.UpdateInsurance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "policy updated", insurance.NewView(*i, h.now()))
}

func (h *InsuranceHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteInsurance(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "policy deleted", nil)
}

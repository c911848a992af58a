// internal/handlers/adjustment/adjustment_handler.go
package adjustment

import (
	"context"
	"net/http"

	"rental-console/internal/domain/adjustment"
	"rental-console/internal/pkg/calc"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListAdjustments(ctx context.Context) ([]adjustment.Adjustment, error)
	LatestAdjustments(ctx context.Context, count int) ([]adjustment.Adjustment, error)
	AdjustmentsByLease(ctx context.Context, leaseID string) ([]adjustment.Adjustment, error)
	GetAdjustment(ctx context.Context, id string) (*adjustment.Adjustment, error)
	CreateAdjustment(ctx context.Context, req *adjustment.CreateAdjustmentRequest) (*adjustment.Adjustment, error)
	UpdateAdjustment(ctx context.Context, id string, req *adjustment.UpdateAdjustmentRequest) (*adjustment.Adjustment, error)
	DeleteAdjustment(ctx context.Context, id string) error
	CalculateAdjustment(ctx context.Context, req *adjustment.CalculateRequest) (float64, error)
	SuggestAdjustment(ctx context.Context, leaseID, index string) (string, error)
}

type AdjustmentHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewAdjustmentHandler(backend Backend, logger *zap.Logger) *AdjustmentHandler {
	return &AdjustmentHandler{backend: backend, logger: logger}
}

// Projection is the answer of Calculate.
type Projection struct {
	Value   float64 `json:"valorNovo"`
	Label   string  `json:"valorNovoFormatado"`
	Percent float64 `json:"percentual"`
}

func (h *AdjustmentHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("adjustment request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

func (h *AdjustmentHandler) respondList(c *gin.Context, op string, list []adjustment.Adjustment, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	response.Success(c, http.StatusOK, "adjustments retrieved", adjustment.NewViews(list))
}

// ========== Queries ==========

func (h *AdjustmentHandler) List(c *gin.Context) {
	list, err := h.backend.ListAdjustments(c.Request.Context())
	h.respondList(c, "list", list, err)
}

// Latest returns the most recent adjustments, ten unless quantidade says otherwise.
func (h *AdjustmentHandler) Latest(c *gin.Context) {
	var q adjustment.LatestQuery
	if !response.BindQuery(c, &q) {
		return
	}
	list, err := h.backend.LatestAdjustments(c.Request.Context(), q.Count)
	h.respondList(c, "latest", list, err)
}

func (h *AdjustmentHandler) ByLease(c *gin.Context) {
	list, err := h.backend.AdjustmentsByLease(c.Request.Context(), c.Param("leaseId"))
	h.respondList(c, "by lease", list, err)
}

func (h *AdjustmentHandler) Get(c *gin.Context) {
	a, err := h.backend.GetAdjustment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "adjustment retrieved", adjustment.NewView(*a))
}

func (h *AdjustmentHandler) Indices(c *gin.Context) {
	response.Success(c, http.StatusOK, "indices retrieved", adjustment.Indices)
}

// ========== Commands ==========

func (h *AdjustmentHandler) Create(c *gin.Context) {
	var req adjustment.CreateAdjustmentRequest
	if !response.BindJSON(c, &req) {
		return
	}

	a, err := h.backend.CreateAdjustment(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "adjustment created", adjustment.NewView(*a))
}

func (h *AdjustmentHandler) Update(c *gin.Context) {
	var req adjustment.UpdateAdjustmentRequest
	if !response.BindJSON(c, &req) {
		return
	}

	a, err := h.backend.UpdateAdjustment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "adjustment updated", adjustment.NewView(*a))
}

func (h *AdjustmentHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteAdjustment(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "adjustment deleted", nil)
}

// ========== Projections ==========

func (h *AdjustmentHandler) Calculate(c *gin.Context) {
	var req adjustment.CalculateRequest
	if !response.BindJSON(c, &req) {
		return
	}

	value, err := h.backend.CalculateAdjustment(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "calculate", err)
		return
	}
	response.Success(c, http.StatusOK, "adjustment calculated", Projection{
		Value:   value,
		Label:   calc.FormatBRL(value),
		Percent: calc.PercentChange(req.CurrentValue.Float64(), value),
	})
}

func (h *AdjustmentHandler) Suggest(c *gin.Context) {
	var q adjustment.SuggestQuery
	if !response.BindQuery(c, &q) {
		return
	}

	suggestion, err := h.backend.SuggestAdjustment(c.Request.Context(), c.Param("leaseId"), q.Index)
	if err != nil {
		h.fail(c, "suggest", err)
		return
	}
	response.Success(c, http.StatusOK, "suggestion retrieved", gin.H{"indice": q.Index, "sugestao": suggestion})
}

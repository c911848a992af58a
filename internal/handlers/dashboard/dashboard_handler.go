// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"context"
	"net/http"

	"rental-console/internal/domain/dashboard"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Backend interface {
	DashboardSummary(ctx context.Context) (*dashboard.Summary, error)
	RevenueExpenseChart(ctx context.Context) ([]dashboard.ChartPoint, error)
	ExpiringLeases(ctx context.Context) ([]dashboard.ExpiringLease, error)
	PendingMaintenance(ctx context.Context) ([]dashboard.PendingMaintenance, error)
	DetailedStats(ctx context.Context) (*dashboard.DetailedStats, error)
}

// Overview is every dashboard block in one response.
type Overview struct {
	Summary            *dashboard.Summary             `json:"resumo"`
	Chart              []dashboard.ChartPoint         `json:"graficoReceitaDespesa"`
	ExpiringLeases     []dashboard.ExpiringLease      `json:"contratosVencendo"`
	PendingMaintenance []dashboard.PendingMaintenance `json:"manutencoesPendentes"`
	Stats              *dashboard.DetailedStats       `json:"estatisticas"`
}

type DashboardHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewDashboardHandler(backend Backend, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{backend: backend, logger: logger}
}

func (h *DashboardHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("dashboard request failed", zap.String("op", op), zap.Error(err))
	response.BackendError(c, err)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.backend.DashboardSummary(c.Request.Context())
	if err != nil {
		h.fail(c, "summary", err)
		return
	}
	response.Success(c, http.StatusOK, "summary retrieved", s)
}

func (h *DashboardHandler) Chart(c *gin.Context) {
	points, err := h.backend.RevenueExpenseChart(c.Request.Context())
	if err != nil {
		h.fail(c, "chart", err)
		return
	}
	response.Success(c, http.StatusOK, "chart retrieved", points)
}

func (h *DashboardHandler) ExpiringLeases(c *gin.Context) {
	list, err := h.backend.ExpiringLeases(c.Request.Context())
	if err != nil {
		h.fail(c, "expiring leases", err)
		return
	}
	response.Success(c, http.StatusOK, "expiring leases retrieved", list)
}

func (h *DashboardHandler) PendingMaintenance(c *gin.Context) {
	list, err := h.backend.PendingMaintenance(c.Request.Context())
	if err != nil {
		h.fail(c, "pending maintenance", err)
		return
	}
	response.Success(c, http.StatusOK, "pending maintenance retrieved", list)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	s, err := h.backend.DetailedStats(c.Request.Context())
	if err != nil {
		h.fail(c, "stats", err)
		return
	}
	response.Success(c, http.StatusOK, "statistics retrieved", s)
}

// Overview loads all blocks concurrently. The first backend failure fails the
// whole response and cancels the remaining calls.
func (h *DashboardHandler) Overview(c *gin.Context) {
	var out Overview
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() (err error) {
		out.Summary, err = h.backend.DashboardSummary(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Chart, err = h.backend.RevenueExpenseChart(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.ExpiringLeases, err = h.backend.ExpiringLeases(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.PendingMaintenance, err = h.backend.PendingMaintenance(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Stats, err = h.backend.DetailedStats(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.fail(c, "overview", err)
		return
	}
	response.Success(c, http.StatusOK, "dashboard retrieved", out)
}

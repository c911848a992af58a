// internal/handlers/payment/payment_handler.go
package payment

import (
	"context"
	"net/http"
	"strconv"

	"rental-console/internal/domain/payment"
	"rental-console/internal/pkg/calc"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListPayments(ctx context.Context) ([]payment.Payment, error)
	PendingPayments(ctx context.Context) ([]payment.Payment, error)
	OverduePayments(ctx context.Context) ([]payment.Payment, error)
	PaymentsByLease(ctx context.Context, leaseID string) ([]payment.Payment, error)
	GetPayment(ctx context.Context, id string) (*payment.Payment, error)
	CreatePayment(ctx context.Context, req *payment.CreatePaymentRequest) (*payment.Payment, error)
	GeneratePayments(ctx context.Context, req *payment.GenerateRequest) ([]payment.Payment, error)
	PayPayment(ctx context.Context, id string, req *payment.PayRequest) (*payment.Payment, error)
	MonthTotal(ctx context.Context) (float64, error)
	TotalByMonth(ctx context.Context, year, month int) (float64, error)
}

type PaymentHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewPaymentHandler(backend Backend, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{backend: backend, logger: logger}
}

// Total is the body of the total endpoints.
type Total struct {
	Total float64 `json:"total"`
	Label string  `json:"totalFormatado"`
}

func (h *PaymentHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("payment request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

func (h *PaymentHandler) list(c *gin.Context, op string, fetch func(context.Context) ([]payment.Payment, error)) {
	list, err := fetch(c.Request.Context())
	if err != nil {
		h.fail(c, op, err)
		return
	}
	response.Success(c, http.StatusOK, "payments retrieved", payment.NewViews(list))
}

// ========== Queries ==========

func (h *PaymentHandler) List(c *gin.Context) {
	h.list(c, "list", h.backend.ListPayments)
}

func (h *PaymentHandler) Pending(c *gin.Context) {
	h.list(c, "pending", h.backend.PendingPayments)
}

func (h *PaymentHandler) Overdue(c *gin.Context) {
	h.list(c, "overdue", h.backend.OverduePayments)
}

func (h *PaymentHandler) ByLease(c *gin.Context) {
	leaseID := c.Param("leaseId")
	h.list(c, "by lease", func(ctx context.Context) ([]payment.Payment, error) {
		return h.backend.PaymentsByLease(ctx, leaseID)
	})
}

func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := h.backend.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "payment retrieved", payment.NewView(*p))
}

// MonthTotal is the amount received in the current month.
func (h *PaymentHandler) MonthTotal(c *gin.Context) {
	total, err := h.backend.MonthTotal(c.Request.Context())
	if err != nil {
		h.fail(c, "month total", err)
		return
	}
	response.Success(c, http.StatusOK, "total retrieved", Total{Total: total, Label: calc.FormatBRL(total)})
}

func (h *PaymentHandler) TotalByMonth(c *gin.Context) {
	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "year and month must be numeric, month between 1 and 12", xerrors.ErrInvalidInput)
		return
	}

	total, err := h.backend.TotalByMonth(c.Request.Context(), year, month)
	if err != nil {
		h.fail(c, "total by month", err)
		return
	}
	response.Success(c, http.StatusOK, "total retrieved", Total{Total: total, Label: calc.FormatBRL(total)})
}

// ========== Commands ==========

func (h *PaymentHandler) Create(c *gin.Context) {
	var req payment.CreatePaymentRequest
	if !response.BindJSON(c, &req) {
		return
	}

	p, err := h.backend.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "payment created", payment.NewView(*p))
}

// Generate creates every monthly receivable of a lease period in one call.
func (h *PaymentHandler) Generate(c *gin.Context) {
	var req payment.GenerateRequest
	if !response.BindJSON(c, &req) {
		return
	}

	list, err := h.backend.GeneratePayments(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "generate", err)
		return
	}
	h.logger.Info("receivables generated", zap.String("lease_id", req.LeaseID), zap.Int("count", len(list)))
	response.Success(c, http.StatusCreated, "payments generated", payment.NewViews(list))
}

func (h *PaymentHandler) Pay(c *gin.Context) {
	var req payment.PayRequest
	if !response.BindJSON(c, &req) {
		return
	}

	p, err := h.backend.PayPayment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "pay", err)
		return
	}
	response.Success(c, http.StatusOK, "payment registered", payment.NewView(*p))
}

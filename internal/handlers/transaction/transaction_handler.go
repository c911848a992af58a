// internal/handlers/transaction/transaction_handler.go
package transaction

import (
	"context"
	"net/http"
	"strconv"

	"rental-console/internal/domain/transaction"
	xerrors "rental-console/internal/pkg/errors"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListTransactions(ctx context.Context) ([]transaction.Transaction, error)
	TransactionsByProperty(ctx context.Context, propertyID string) ([]transaction.Transaction, error)
	TransactionsByPeriod(ctx context.Context, period transaction.PeriodQuery) ([]transaction.Transaction, error)
	TransactionsByCategory(ctx context.Context, category string) ([]transaction.Transaction, error)
	SearchTransactions(ctx context.Context, params transaction.SearchParams) ([]transaction.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error)
	CreateTransaction(ctx context.Context, req *transaction.CreateTransactionRequest) (*transaction.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req *transaction.UpdateTransactionRequest) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	SettleTransaction(ctx context.Context, id, action string, req *transaction.SettleRequest) error
	PeriodBalance(ctx context.Context, period transaction.PeriodQuery) (*transaction.PeriodBalance, error)
	AnnualReport(ctx context.Context, year int) ([]transaction.MonthReport, error)
}

type TransactionHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewTransactionHandler(backend Backend, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{backend: backend, logger: logger}
}

func (h *TransactionHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("transaction request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

func (h *TransactionHandler) respondList(c *gin.Context, op string, list []transaction.Transaction, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	response.Success(c, http.StatusOK, "transactions retrieved", list)
}

// ========== Queries ==========

func (h *TransactionHandler) List(c *gin.Context) {
	list, err := h.backend.ListTransactions(c.Request.Context())
	h.respondList(c, "list", list, err)
}

func (h *TransactionHandler) ByProperty(c *gin.Context) {
	list, err := h.backend.TransactionsByProperty(c.Request.Context(), c.Param("propertyId"))
	h.respondList(c, "by property", list, err)
}

func (h *TransactionHandler) ByPeriod(c *gin.Context) {
	var period transaction.PeriodQuery
	if !response.BindQuery(c, &period) {
		return
	}
	list, err := h.backend.TransactionsByPeriod(c.Request.Context(), period)
	h.respondList(c, "by period", list, err)
}

func (h *TransactionHandler) ByCategory(c *gin.Context) {
	list, err := h.backend.TransactionsByCategory(c.Request.Context(), c.Param("category"))
	h.respondList(c, "by category", list, err)
}

func (h *TransactionHandler) Search(c *gin.Context) {
	var params transaction.SearchParams
	if !response.BindQuery(c, &params) {
		return
	}
	list, err := h.backend.SearchTransactions(c.Request.Context(), params)
	h.respondList(c, "search", list, err)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	t, err := h.backend.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "transaction retrieved", t)
}

// ========== Reports ==========

func (h *TransactionHandler) Balance(c *gin.Context) {
	var period transaction.PeriodQuery
	if !response.BindQuery(c, &period) {
		return
	}

	balance, err := h.backend.PeriodBalance(c.Request.Context(), period)
	if err != nil {
		h.fail(c, "balance", err)
		return
	}
	response.Success(c, http.StatusOK, "balance retrieved", balance)
}

func (h *TransactionHandler) AnnualReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 {
		response.Error(c, http.StatusBadRequest, "year must be a four digit number", xerrors.ErrInvalidInput)
		return
	}

	report, err := h.backend.AnnualReport(c.Request.Context(), year)
	if err != nil {
		h.fail(c, "annual report", err)
		return
	}
	response.Success(c, http.StatusOK, "report retrieved", report)
}

// ========== Commands ==========

func (h *TransactionHandler) Create(c *gin.Context) {
	var req transaction.CreateTransactionRequest
	if !response.BindJSON(c, &req) {
		return
	}

	t, err := h.backend.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "transaction created", t)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var req transaction.UpdateTransactionRequest
	if !response.BindJSON(c, &req) {
		return
	}

	t, err := h.backend.UpdateTransaction(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "transaction updated", t)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "transaction deleted", nil)
}

func (h *TransactionHandler) Pay(c *gin.Context) {
	h.settle(c, transaction.ActionPay, "transaction paid")
}

func (h *TransactionHandler) Receive(c *gin.Context) {
	h.settle(c, transaction.ActionReceive, "transaction received")
}

func (h *TransactionHandler) Cancel(c *gin.Context) {
	h.settle(c, transaction.ActionCancel, "transaction cancelled")
}

// settle accepts an empty body; the backend then stamps today's date.
func (h *TransactionHandler) settle(c *gin.Context, action, message string) {
	var req transaction.SettleRequest
	if c.Request.ContentLength > 0 && !response.BindJSON(c, &req) {
		return
	}

	if err := h.backend.SettleTransaction(c.Request.Context(), c.Param("id"), action, &req); err != nil {
		h.fail(c, action, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}

// internal/handlers/lease/lease_handler.go
package lease

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rental-console/internal/domain/lease"
	"rental-console/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Backend interface {
	ListLeases(ctx context.Context) ([]lease.Lease, error)
	GetLease(ctx context.Context, id string) (*lease.Lease, error)
	GetLeaseDetails(ctx context.Context, id string) (*lease.Details, error)
	CreateLease(ctx context.Context, req *lease.CreateLeaseRequest) (*lease.Lease, error)
	UpdateLease(ctx context.Context, id string, req *lease.UpdateLeaseRequest) (*lease.Lease, error)
	DeleteLease(ctx context.Context, id string) error
	CloseLease(ctx context.Context, id string) error
	SuspendLease(ctx context.Context, id string) error
	ReactivateLease(ctx context.Context, id string) error
	LeasePDF(ctx context.Context, id string) ([]byte, string, error)
	SaveLeasePDF(ctx context.Context, id string) (*lease.Lease, error)
}

type LeaseHandler struct {
	backend Backend
	logger  *zap.Logger
	now     func() time.Time
}

func NewLeaseHandler(backend Backend, logger *zap.Logger) *LeaseHandler {
	return &LeaseHandler{backend: backend, logger: logger, now: time.Now}
}

func (h *LeaseHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Warn("lease request failed",
		zap.String("op", op),
		zap.String("id", c.Param("id")),
		zap.Error(err),
	)
	response.BackendError(c, err)
}

// ========== Queries ==========

// List returns every lease with the months left until its end date.
func (h *LeaseHandler) List(c *gin.Context) {
	list, err := h.backend.ListLeases(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.Success(c, http.StatusOK, "leases retrieved", lease.NewViews(list, h.now()))
}

// Options lists active leases with the rent and due day payment forms prefill.
func (h *LeaseHandler) Options(c *gin.Context) {
	list, err := h.backend.ListLeases(c.Request.Context())
	if err != nil {
		h.fail(c, "options", err)
		return
	}
	response.Success(c, http.StatusOK, "lease options retrieved", lease.Options(list))
}

func (h *LeaseHandler) Get(c *gin.Context) {
	l, err := h.backend.GetLease(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	response.Success(c, http.StatusOK, "lease retrieved", lease.NewView(*l, h.now()))
}

func (h *LeaseHandler) Details(c *gin.Context) {
	d, err := h.backend.GetLeaseDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "details", err)
		return
	}
	response.Success(c, http.StatusOK, "lease details retrieved", d)
}

// ========== Commands ==========

func (h *LeaseHandler) Create(c *gin.Context) {
	var req lease.CreateLeaseRequest
	if !response.BindJSON(c, &req) {
		return
	}

	l, err := h.backend.CreateLease(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, http.StatusCreated, "lease created", l)
}

func (h *LeaseHandler) Update(c *gin.Context) {
	var req lease.UpdateLeaseRequest
	if !response.BindJSON(c, &req) {
		return
	}

	l, err := h.backend.UpdateLease(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, http.StatusOK, "lease updated", l)
}

func (h *LeaseHandler) Delete(c *gin.Context) {
	if err := h.backend.DeleteLease(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, http.StatusOK, "lease deleted", nil)
}

func (h *LeaseHandler) Close(c *gin.Context) {
	if err := h.backend.CloseLease(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "close", err)
		return
	}
	response.Success(c, http.StatusOK, "lease closed", nil)
}

func (h *LeaseHandler) Suspend(c *gin.Context) {
	if err := h.backend.SuspendLease(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "suspend", err)
		return
	}
	response.Success(c, http.StatusOK, "lease suspended", nil)
}

func (h *LeaseHandler) Reactivate(c *gin.Context) {
	if err := h.backend.ReactivateLease(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "reactivate", err)
		return
	}
	response.Success(c, http.StatusOK, "lease reactivated", nil)
}

// ========== Documents ==========

// PDF streams the generated contract document as an attachment.
func (h *LeaseHandler) PDF(c *gin.Context) {
	id := c.Param("id")
	doc, contentType, err := h.backend.LeasePDF(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "pdf", err)
		return
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="contrato-%s.pdf"`, id))
	c.Data(http.StatusOK, contentType, doc)
}

// SavePDF has the backend render and store the document, returning the lease with its path.
func (h *LeaseHandler) SavePDF(c *gin.Context) {
	l, err := h.backend.SaveLeasePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "save pdf", err)
		return
	}
	response.Success(c, http.StatusOK, "lease document saved", l)
}

// internal/app/router.go
package app

import (
	"net/http"

	adjustmentHandler "rental-console/internal/handlers/adjustment"
	authHandler "rental-console/internal/handlers/auth"
	dashboardHandler "rental-console/internal/handlers/dashboard"
	insuranceHandler "rental-console/internal/handlers/insurance"
	leaseHandler "rental-console/internal/handlers/lease"
	maintenanceHandler "rental-console/internal/handlers/maintenance"
	paymentHandler "rental-console/internal/handlers/payment"
	propertyHandler "rental-console/internal/handlers/property"
	tenantHandler "rental-console/internal/handlers/tenant"
	transactionHandler "rental-console/internal/handlers/transaction"
	wsHandler "rental-console/internal/handlers/websocket"
	"rental-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler        *authHandler.AuthHandler
	PropertyHandler    *propertyHandler.PropertyHandler
	TenantHandler      *tenantHandler.TenantHandler
	LeaseHandler       *leaseHandler.LeaseHandler
	PaymentHandler     *paymentHandler.PaymentHandler
	TransactionHandler *transactionHandler.TransactionHandler
	MaintenanceHandler *maintenanceHandler.MaintenanceHandler
	AdjustmentHandler  *adjustmentHandler.AdjustmentHandler
	InsuranceHandler   *insuranceHandler.InsuranceHandler
	DashboardHandler   *dashboardHandler.DashboardHandler
	WSHandler          *wsHandler.WebSocketHandler
	SessionMiddleware  *middleware.SessionMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws/session", h.WSHandler.HandleConnection)

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/logout", h.AuthHandler.Logout)
		authPublic.GET("/session", h.AuthHandler.Session)
	}

	// ==================== Guarded Routes ====================
	guarded := api.Group("")
	guarded.Use(
		h.SessionMiddleware.RequireSession(),
		h.SessionMiddleware.ReconcileOnUnauthorized(),
	)

	authProtected := guarded.Group("/auth")
	{
		authProtected.GET("/me", h.AuthHandler.Me)
		authProtected.PUT("/me", h.AuthHandler.UpdateMe)
		authProtected.PUT("/password", h.AuthHandler.ChangePassword)
		authProtected.GET("/validate", h.AuthHandler.Validate)
	}

	properties := guarded.Group("/properties")
	{
		properties.GET("", h.PropertyHandler.List)
		properties.GET("/search", h.PropertyHandler.Search)
		properties.GET("/options", h.PropertyHandler.Options)
		properties.GET("/:id", h.PropertyHandler.Get)
		properties.POST("", h.PropertyHandler.Create)
		properties.PUT("/:id", h.PropertyHandler.Update)
		properties.DELETE("/:id", h.PropertyHandler.Delete)
		properties.PUT("/:id/activate", h.PropertyHandler.Activate)
		properties.PUT("/:id/deactivate", h.PropertyHandler.Deactivate)
	}

	tenants := guarded.Group("/tenants")
	{
		tenants.GET("", h.TenantHandler.List)
		tenants.GET("/search", h.TenantHandler.Search)
		tenants.GET("/options", h.TenantHandler.Options)
		tenants.GET("/:id", h.TenantHandler.Get)
		tenants.POST("", h.TenantHandler.Create)
		tenants.PUT("/:id", h.TenantHandler.Update)
		tenants.DELETE("/:id", h.TenantHandler.Delete)
		tenants.PUT("/:id/compliant", h.TenantHandler.MarkCompliant)
		tenants.PUT("/:id/defaulting", h.TenantHandler.MarkDefaulting)
	}

	leases := guarded.Group("/leases")
	{
		leases.GET("", h.LeaseHandler.List)
		leases.GET("/options", h.LeaseHandler.Options)
		leases.GET("/:id", h.LeaseHandler.Get)
		leases.GET("/:id/details", h.LeaseHandler.Details)
		leases.POST("", h.LeaseHandler.Create)
		leases.PUT("/:id", h.LeaseHandler.Update)
		leases.DELETE("/:id", h.LeaseHandler.Delete)
		leases.PUT("/:id/close", h.LeaseHandler.Close)
		leases.PUT("/:id/suspend", h.LeaseHandler.Suspend)
		leases.PUT("/:id/reactivate", h.LeaseHandler.Reactivate)
		leases.GET("/:id/pdf", h.LeaseHandler.PDF)
		leases.POST("/:id/pdf", h.LeaseHandler.SavePDF)
	}

	payments := guarded.Group("/payments")
	{
		payments.GET("", h.PaymentHandler.List)
		payments.GET("/pending", h.PaymentHandler.Pending)
		payments.GET("/overdue", h.PaymentHandler.Overdue)
		payments.GET("/lease/:leaseId", h.PaymentHandler.ByLease)
		payments.GET("/total/month", h.PaymentHandler.MonthTotal)
		payments.GET("/total/:year/:month", h.PaymentHandler.TotalByMonth)
		payments.GET("/:id", h.PaymentHandler.Get)
		payments.POST("", h.PaymentHandler.Create)
		payments.POST("/generate", h.PaymentHandler.Generate)
		payments.POST("/:id/pay", h.PaymentHandler.Pay)
	}

	transactions := guarded.Group("/transactions")
	{
		transactions.GET("", h.TransactionHandler.List)
		transactions.GET("/property/:propertyId", h.TransactionHandler.ByProperty)
		transactions.GET("/period", h.TransactionHandler.ByPeriod)
		transactions.GET("/category/:category", h.TransactionHandler.ByCategory)
		transactions.GET("/search", h.TransactionHandler.Search)
		transactions.GET("/balance", h.TransactionHandler.Balance)
		transactions.GET("/report/:year", h.TransactionHandler.AnnualReport)
		transactions.GET("/:id", h.TransactionHandler.Get)
		transactions.POST("", h.TransactionHandler.Create)
		transactions.PUT("/:id", h.TransactionHandler.Update)
		transactions.DELETE("/:id", h.TransactionHandler.Delete)
		transactions.PUT("/:id/pay", h.TransactionHandler.Pay)
		transactions.PUT("/:id/receive", h.TransactionHandler.Receive)
		transactions.PUT("/:id/cancel", h.TransactionHandler.Cancel)
	}

	maintenance := guarded.Group("/maintenance")
	{
		maintenance.GET("", h.MaintenanceHandler.List)
		maintenance.GET("/property/:propertyId", h.MaintenanceHandler.ByProperty)
		maintenance.GET("/:id", h.MaintenanceHandler.Get)
		maintenance.POST("", h.MaintenanceHandler.Create)
		maintenance.PUT("/:id", h.MaintenanceHandler.Update)
		maintenance.DELETE("/:id", h.MaintenanceHandler.Delete)
		maintenance.PUT("/:id/complete", h.MaintenanceHandler.Complete)
	}

	adjustments := guarded.Group("/adjustments")
	{
		adjustments.GET("", h.AdjustmentHandler.List)
		adjustments.GET("/latest", h.AdjustmentHandler.Latest)
		adjustments.GET("/indices", h.AdjustmentHandler.Indices)
		adjustments.GET("/lease/:leaseId", h.AdjustmentHandler.ByLease)
		adjustments.GET("/suggest/:leaseId", h.AdjustmentHandler.Suggest)
		adjustments.POST("/calculate", h.AdjustmentHandler.Calculate)
		adjustments.GET("/:id", h.AdjustmentHandler.Get)
		adjustments.POST("", h.AdjustmentHandler.Create)
		adjustments.PUT("/:id", h.AdjustmentHandler.Update)
		adjustments.DELETE("/:id", h.AdjustmentHandler.Delete)
	}

	insurance := guarded.Group("/insurance")
	{
		insurance.GET("", h.InsuranceHandler.List)
		insurance.GET("/property/:propertyId", h.InsuranceHandler.ByProperty)
		insurance.GET("/search", h.InsuranceHandler.Search)
		insurance.GET("/expiring", h.InsuranceHandler.Expiring)
		insurance.GET("/:id", h.InsuranceHandler.Get)
		insurance.POST("", h.InsuranceHandler.Create)
		insurance.PUT("/:id", h.InsuranceHandler.Update)
		insurance.DELETE("/:id", h.InsuranceHandler.Delete)
	}

	dashboard := guarded.Group("/dashboard")
	{
		dashboard.GET("", h.DashboardHandler.Overview)
		dashboard.GET("/summary", h.DashboardHandler.Summary)
		dashboard.GET("/chart", h.DashboardHandler.Chart)
		dashboard.GET("/expiring-leases", h.DashboardHandler.ExpiringLeases)
		dashboard.GET("/pending-maintenance", h.DashboardHandler.PendingMaintenance)
		dashboard.GET("/stats", h.DashboardHandler.Stats)
	}

	guarded.GET("/ws/stats", h.WSHandler.GetStats)

	logger.Info("routes registered", zap.Int("count", len(r.Routes())))
}

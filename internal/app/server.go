// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rental-console/internal/backend"
	"rental-console/internal/config"
	"rental-console/internal/db"
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
	"rental-console/internal/pkg/jwt"
	"rental-console/internal/pkg/session"
	"rental-console/internal/pkg/validation"
	"rental-console/internal/repository/postgres"
	authUsecase "rental-console/internal/service/auth"
	"rental-console/internal/websocket"
	wsHandlers "rental-console/internal/websocket/handler"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server

	sessions *session.Manager
	stopHub  context.CancelFunc
	closers  []func()
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New(), logger: logger}
}

// Setup connects the session storage, restores the persisted session and
// mounts every route. It must run before Start.
func (s *Server) Setup(ctx context.Context) error {
	logger := s.logger

	// ----- Validation -----
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	if err := validation.Register(engine); err != nil {
		return fmt.Errorf("failed to register validation rules: %w", err)
	}

	// ----- Session storage & login limiter -----
	storage, limiter, err := s.openStorage(ctx)
	if err != nil {
		return err
	}

	// ----- Backend client & session manager -----
	client := backend.NewClient(s.cfg.BackendURL, s.cfg.BackendTimeout, nil, logger.Named("backend"))
	sessionManager := session.NewManager(storage, client, logger.Named("session"),
		session.WithTokenExpiry(jwt.NewInspector().Expiry),
	)
	client.SetTokenSource(sessionManager)
	s.sessions = sessionManager

	if err := sessionManager.Initialize(ctx); err != nil {
		logger.Error("failed to restore session, starting anonymous", zap.Error(err))
	}

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(sessionManager, logger.Named("ws"))
	hub.RegisterHandler(wsHandlers.NewSessionHandler(sessionManager, logger))

	hubCtx, stopHub := context.WithCancel(context.Background())
	s.stopHub = stopHub
	go hub.Run(hubCtx)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(client, sessionManager, limiter, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:        authHandler.NewAuthHandler(authService, logger),
		PropertyHandler:    propertyHandler.NewPropertyHandler(client, logger),
		TenantHandler:      tenantHandler.NewTenantHandler(client, logger),
		LeaseHandler:       leaseHandler.NewLeaseHandler(client, logger),
		PaymentHandler:     paymentHandler.NewPaymentHandler(client, logger),
		TransactionHandler: transactionHandler.NewTransactionHandler(client, logger),
		MaintenanceHandler: maintenanceHandler.NewMaintenanceHandler(client, logger),
		AdjustmentHandler:  adjustmentHandler.NewAdjustmentHandler(client, logger),
		InsuranceHandler:   insuranceHandler.NewInsuranceHandler(client, logger),
		DashboardHandler:   dashboardHandler.NewDashboardHandler(client, logger),
		WSHandler:          wsHandler.NewWebSocketHandler(hub, s.cfg.CORSOrigins, logger),
		SessionMiddleware:  middleware.NewSessionMiddleware(sessionManager, logger),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSOrigins),
	)

	// ----- Router -----
	SetupRouter(s.engine, logger, handlers)

	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}
	return nil
}

// openStorage builds the durable storage for the configured driver. Redis also
// backs the login limiter; the other drivers limit in memory.
func (s *Server) openStorage(ctx context.Context) (session.Storage, session.LoginLimiter, error) {
	switch s.cfg.StorageDriver {
	case config.StorageMemory:
		s.logger.Warn("session storage is in memory, the session will not survive a restart")
		return session.NewMemoryStorage(), session.NewMemoryRateLimiter(), nil

	case config.StorageRedis:
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Address:  s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       s.cfg.RedisDB,
			PoolSize: 4,
		})
		if err != nil {
			return nil, nil, err
		}
		s.closers = append(s.closers, func() { _ = redisClient.Close() })
		s.logger.Info("session storage: redis", zap.String("addr", s.cfg.RedisAddr))
		return session.NewRedisStorage(redisClient, s.cfg.KeyPrefix),
			session.NewRedisRateLimiter(redisClient, s.cfg.KeyPrefix), nil

	case config.StoragePostgres:
		pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		s.closers = append(s.closers, pool.Close)
		repo := postgres.NewStorageRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		s.logger.Info("session storage: postgres")
		return repo, session.NewMemoryRateLimiter(), nil

	default:
		fs, err := session.NewFileStorage(s.cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		s.logger.Info("session storage: file", zap.String("path", fs.Path()))
		return fs, session.NewMemoryRateLimiter(), nil
	}
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	if s.http == nil {
		return errors.New("server not set up")
	}
	s.logger.Info("console listening",
		zap.String("addr", s.cfg.HTTPAddr),
		zap.String("backend", s.cfg.BackendURL),
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains HTTP, stops the websocket hub and abandons any outstanding
// profile fetch. The persisted session is left as is.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	if s.stopHub != nil {
		s.stopHub()
	}
	if s.sessions != nil {
		s.sessions.Close()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	return err
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"impersonation-service/app/port"
	"impersonation-service/app/rest/handlers"
	custommw "impersonation-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger               *slog.Logger
	ImpersonationUsecase port.ImpersonationUsecase
	AuditReader          port.AuditReader
	Database             handlers.Pinger
	RateLimiter          *custommw.RateLimiter
	ImpersonateRateEvery time.Duration
	ImpersonateRateBurst int
	EnableDebug          bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	impersonationHandler := handlers.NewImpersonationHandler(config.ImpersonationUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Logger)

	rateLimiter := config.RateLimiter
	if rateLimiter == nil {
		rateLimiter = custommw.NewRateLimiter(config.ImpersonateRateEvery, config.ImpersonateRateBurst)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Request bodies carry the shared secret; only method, path and
	// status are logged at the access log level.
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}\n",
	}))

	api := e.Group("/api")
	api.POST("/impersonate", impersonationHandler.Impersonate)

	if config.AuditReader != nil {
		auditHandler := handlers.NewAuditHandler(config.AuditReader, config.Logger)
		api.GET("/audit/:targetUserId", auditHandler.RecentAttempts)
	}

	health := e.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	health.GET("/ready", healthHandler.ReadinessCheck)
	health.GET("/live", healthHandler.LivenessCheck)

	return e
}

package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"impersonation-service/app/config"
	"impersonation-service/app/driver/cognito"
	"impersonation-service/app/driver/postgres"
	"impersonation-service/app/driver/secretsmanager"
	"impersonation-service/app/gateway"
	"impersonation-service/app/port"
	"impersonation-service/app/rest"
	"impersonation-service/app/rest/middleware"
	"impersonation-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB            *postgres.DB
	CognitoClient *cognito.Client
	SecretsClient *secretsmanager.Client

	// Gateway
	Gateway *gateway.ImpersonationGateway

	// Usecases
	ImpersonationUsecase port.ImpersonationUsecase
	AuditReader          port.AuditReader

	rateLimiter *middleware.RateLimiter
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.CognitoClient, err = cognito.NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cognito client: %w", err)
	}

	container.SecretsClient, err = secretsmanager.NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets manager client: %w", err)
	}

	// The audit trail is optional; without a database every attempt is
	// still logged, just not persisted.
	var auditRecorder port.AuditRecorder
	if cfg.EnableAuditLog {
		container.DB, err = postgres.NewConnection(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		auditRepository := postgres.NewAuditRepository(container.DB.Pool(), logger)
		auditRecorder = auditRepository
		container.AuditReader = auditRepository
	}

	providerAdapter := cognito.NewAdapter(container.CognitoClient, logger)
	container.Gateway = gateway.NewImpersonationGateway(providerAdapter, container.SecretsClient, logger)

	container.ImpersonationUsecase = usecase.NewImpersonationUseCase(
		container.Gateway,
		container.Gateway,
		container.Gateway,
		auditRecorder,
		cfg.ImpersonationSecretID,
		logger,
	)

	logger.Info("container initialized",
		"audit_enabled", cfg.EnableAuditLog,
		"region", cfg.AWSRegion)

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	c.rateLimiter = middleware.NewRateLimiter(c.Config.ImpersonateRateEvery, c.Config.ImpersonateRateBurst)

	routerConfig := rest.RouterConfig{
		Logger:               c.Logger,
		ImpersonationUsecase: c.ImpersonationUsecase,
		AuditReader:          c.AuditReader,
		RateLimiter:          c.rateLimiter,
		ImpersonateRateEvery: c.Config.ImpersonateRateEvery,
		ImpersonateRateBurst: c.Config.ImpersonateRateBurst,
		EnableDebug:          c.Config.LogLevel == "debug",
	}
	if c.DB != nil {
		routerConfig.Database = c.DB
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.rateLimiter != nil {
		c.rateLimiter.Stop()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	authUseCase "github.com/amirhossein-jamali/smores-api/internal/domain/usecase/auth"
	cardUseCase "github.com/amirhossein-jamali/smores-api/internal/domain/usecase/card"
	paymentUseCase "github.com/amirhossein-jamali/smores-api/internal/domain/usecase/payment"
	resourceUseCase "github.com/amirhossein-jamali/smores-api/internal/domain/usecase/resource"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/payment"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/secret"
	timeProvider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/config"
)

const poolMonitorInterval = 15 * time.Second

// App holds the wired services of one process
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	DB           *database.Manager
	Metrics      *metrics.Metrics
	Catalog      *search.Catalog

	Hasher    *authUseCase.PasswordHasher
	Auth      *authUseCase.Service
	Resources *resourceUseCase.Service
	Cards     *cardUseCase.Service
	Payments  *paymentUseCase.Service
}

// NewLogger builds the zap logger described by cfg
func NewLogger(cfg config.LoggerConfig) (coreport.Logger, error) {
	return logger.NewZapLogger(logger.Options{
		Level:      cfg.Level,
		Format:     cfg.Format,
		Output:     cfg.Output,
		CallerInfo: cfg.CallerInfo,
	})
}

// New connects to the database and wires every service
func New(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (*App, error) {
	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return newApp(cfg, appLogger, tp, dbManager), nil
}

func newApp(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider, dbManager *database.Manager) *App {
	a := &App{
		Config:       cfg,
		Logger:       appLogger,
		TimeProvider: tp,
		DB:           dbManager,
		Metrics:      metrics.New(),
		Catalog:      search.DefaultCatalog(),
		Hasher:       authUseCase.NewPasswordHasher(cfg.Security.BcryptCost),
	}
	a.wire()
	return a
}

func (a *App) wire() {
	cfg := a.Config
	db := a.DB.DB()
	secrets := secret.NewUUIDGenerator()
	uow := a.DB.CreateUnitOfWork(a.Catalog)

	providerOpts := []payment.ProviderOption{payment.WithObserver(a.Metrics)}
	if cfg.Payment.StripeURL != "" {
		providerOpts = append(providerOpts, payment.WithBackends(payment.NewBackends(cfg.Payment.StripeURL)))
	}
	processors := payment.NewProvider(
		repository.NewSettingRepository(db),
		cfg.Payment.StripeAPIKey,
		a.TimeProvider,
		a.Logger,
		providerOpts...,
	)

	a.Auth = authUseCase.NewService(
		repository.NewUserRepository(db, a.TimeProvider, a.Logger),
		repository.NewTokenRepository(db, a.Logger),
		a.Hasher,
		secrets,
		a.TimeProvider,
		a.Logger,
		cfg.Security.TokenTTL,
	)
	a.Cards = cardUseCase.NewService(uow, processors, a.TimeProvider, a.Logger)
	a.Payments = paymentUseCase.NewService(uow, processors, a.TimeProvider, a.Logger)
	a.Resources = resourceUseCase.NewService(a.Catalog, uow, a.Hasher, secrets, processors, a.Cards, a.Logger)
}

// Migrate brings the schema up to date
func (a *App) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(a.DB.DB(), a.Logger, a.TimeProvider).MigrateAll(ctx)
}

// Seeder returns the seeder for this database
func (a *App) Seeder() *migration.Seeder {
	return migration.NewSeeder(a.DB.DB(), a.Hasher, a.Logger, a.TimeProvider)
}

// Seed writes the settings row and the bootstrap employee
func (a *App) Seed(ctx context.Context) error {
	return a.Seeder().Seed(ctx, migration.SeedOptions{
		StripeAPIKey:      a.Config.Payment.StripeAPIKey,
		BootstrapEmail:    a.Config.Security.BootstrapEmail,
		BootstrapPassword: a.Config.Security.BootstrapPassword,
	})
}

// PurgeTokens removes expired sessions and counts them
func (a *App) PurgeTokens(ctx context.Context) (int64, error) {
	removed, err := a.Auth.PurgeExpired(ctx)
	if err != nil {
		return 0, err
	}
	a.Metrics.TokensPurged(removed)
	return removed, nil
}

// Router builds the gin engine serving the API
func (a *App) Router() *gin.Engine {
	cfg := a.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer := handler.NewRenderer(cfg.App.Debug, a.TimeProvider)
	limits := search.Limits{Default: cfg.Search.DefaultLimit, Max: cfg.Search.MaxLimit}

	handlers := routes.Handlers{
		Resource: handler.NewResourceHandler(a.Resources, limits, renderer, a.Logger),
		Auth:     handler.NewAuthHandler(a.Auth, renderer, a.Logger),
		Card:     handler.NewCardHandler(a.Cards, a.Resources, renderer, a.Logger),
		Payment:  handler.NewPaymentHandler(a.Payments, a.Resources, renderer, a.Logger),
		Health:   handler.NewHealthHandler(a.DB, a.Logger),
	}

	opts := routes.Options{
		BaseURI:    cfg.App.BaseURI,
		CORSOrigin: cfg.App.CORSOrigin,
		Auth: middleware.AuthOptions{
			Enabled:           cfg.Security.Enabled,
			ImpersonateUserID: cfg.Security.ImpersonateUserID,
		},
		TimeProvider: a.TimeProvider,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, a.TimeProvider)
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = a.Metrics
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = a.Metrics.Handler()
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		a.Logger.Error("Invalid trusted proxies, trusting none", map[string]any{
			"proxies": cfg.Server.TrustedProxies,
			"error":   err.Error(),
		})
		_ = router.SetTrustedProxies(nil)
	}
	routes.SetupMiddlewares(router, a.Logger, opts)
	routes.SetupRoutes(router, a.Catalog, handlers, a.Auth, opts)
	return router
}

// Serve runs the HTTP server and the background jobs until ctx is done,
// then shuts down gracefully
func (a *App) Serve(ctx context.Context) error {
	cfg := a.Config

	if cfg.Metrics.Enabled {
		a.DB.StartPoolMonitor(a.Metrics, poolMonitorInterval)
	}

	jobsCtx, stopJobs := context.WithCancel(ctx)
	defer stopJobs()
	go a.runTokenPurge(jobsCtx, cfg.Security.TokenPurgeInterval)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           a.Router(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"base_uri": cfg.App.BaseURI,
			"security": cfg.Security.Enabled,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}

	a.Logger.Info("Server exited gracefully", nil)
	return nil
}

func (a *App) runTokenPurge(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.PurgeTokens(ctx); err != nil {
				a.Logger.Warn("Token purge failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Close releases the database connection and flushes the logger
func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = a.Logger.Flush()
}

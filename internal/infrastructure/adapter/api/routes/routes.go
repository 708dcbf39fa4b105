package routes

import (
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Resource *handler.ResourceHandler
	Auth     *handler.AuthHandler
	Card     *handler.CardHandler
	Payment  *handler.PaymentHandler
	Health   *handler.HealthHandler
}

// Options configures the router. Nil RateLimiter and Metrics disable those middlewares.
type Options struct {
	BaseURI        string
	CORSOrigin     string
	Auth           middleware.AuthOptions
	RateLimiter    *middleware.RateLimiter
	Metrics        middleware.RequestObserver
	MetricsPath    string
	MetricsHandler http.Handler
	TimeProvider   coreport.TimeProvider
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts Options) {
	// Logger and Metrics wrap ErrorHandler so they see the rendered status
	router.Use(middleware.RequestMeta(opts.TimeProvider))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(opts.CORSOrigin))
	if opts.RateLimiter != nil {
		router.Use(middleware.RateLimit(opts.RateLimiter))
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.Abort(c, fmt.Errorf("route %s %s: %w", c.Request.Method, c.Request.URL.Path, errs.ErrNotFound))
	})
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	catalog *search.Catalog,
	handlers Handlers,
	auth usecase.AuthUseCase,
	opts Options,
) {
	router.GET("/health", handlers.Health.Health)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	api := router.Group(opts.BaseURI)

	// Auth routes
	authRoutes := api.Group("/auth")
	{
		// POST /v1/auth/login
		authRoutes.POST("/login", middleware.JSONBody(), handlers.Auth.Login)

		// GET|POST /v1/auth/logout
		authRoutes.GET("/logout", handlers.Auth.Logout)
		authRoutes.POST("/logout", handlers.Auth.Logout)

		// GET /v1/auth/profile
		authRoutes.GET("/profile", middleware.Auth(auth, opts.Auth), handlers.Auth.Profile)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(auth, opts.Auth))

	for _, name := range catalog.Names() {
		group := protected.Group("/" + name)
		if res, ok := catalog.Lookup(name); ok && res.EmployeesOnly {
			group.Use(middleware.RequireUserType(entity.UserTypeEmployee))
		}

		// GET /v1/<name> and GET /v1/<name>/:id
		group.GET("", handlers.Resource.List(name))
		group.GET("/:id", handlers.Resource.Get(name))

		switch name {
		case "cards":
			group.POST("", middleware.JSONBody(), handlers.Card.Create)
			group.DELETE("/:id", handlers.Card.Delete)
		case "payments":
			group.POST("", middleware.JSONBody(), handlers.Payment.Create)
			group.POST("/:id/refund", handlers.Payment.Refund)
		default:
			group.POST("", middleware.JSONBody(), handlers.Resource.Create(name))
			group.PUT("/:id", middleware.JSONBody(), handlers.Resource.Update(name))
			group.PATCH("/:id", middleware.JSONBody(), handlers.Resource.Update(name))
			group.DELETE("/:id", handlers.Resource.Delete(name))
		}
	}
}

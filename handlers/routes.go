package handlers

import (
	"lai_landing_go/config"
	"lai_landing_go/middleware"
	"lai_landing_go/services"
	"lai_landing_go/services/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// ServerOptions holds the collaborators NewServer does not build itself
type ServerOptions struct {
	// Rate limiters for interaction and login posts. nil uses the package defaults.
	InteractionLimiter *middleware.RateLimiter
	LoginLimiter       *middleware.RateLimiter
	// Gatherer backs /metrics when metrics are enabled
	Gatherer prometheus.Gatherer
}

// NewServer creates the Echo instance with middleware and routes.
// services.ViewStates must be initialized first.
func NewServer(cfg *config.Config, opts ServerOptions) *echo.Echo {
	if opts.InteractionLimiter == nil {
		opts.InteractionLimiter = middleware.InteractionRateLimiter
	}
	if opts.LoginLimiter == nil {
		opts.LoginLimiter = middleware.LoginRateLimiter
	}

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.CSPNonce(cfg.HeroImageURL))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.Locale(cfg))

	// Static files
	e.Static("/static", "static")

	// Page and interaction routes share the CSRF token and view state cookie
	page := []echo.MiddlewareFunc{
		middleware.CSRF(cfg),
		middleware.ViewState(services.ViewStates),
	}
	interactions := append([]echo.MiddlewareFunc{opts.InteractionLimiter.Middleware()}, page...)
	logins := append([]echo.MiddlewareFunc{opts.LoginLimiter.Middleware()}, page...)

	e.GET("/", LandingHandler, page...)

	e.POST("/actions/try", TryAssistantHandler, interactions...)
	e.POST("/actions/service", SelectServiceHandler, interactions...)
	e.POST("/actions/feature", ActivateFeatureHandler, interactions...)
	e.POST("/actions/navigate", NavigateHandler, interactions...)

	e.POST("/login/open", OpenLoginHandler, interactions...)
	e.POST("/login/cancel", CancelLoginHandler, interactions...)
	e.POST("/login", LoginPostHandler, logins...)

	// Public routes
	e.GET("/health", HealthHandler)
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/robots.txt", GetRobotsHandler)

	if cfg.MetricsEnabled && opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(opts.Gatherer)))
	}

	return e
}

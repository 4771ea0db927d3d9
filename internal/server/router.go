package server

import (
	"context"
	"net/http"

	"creditnext/internal/config"
	"creditnext/internal/handlers"
	"creditnext/internal/middleware"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health      *handlers.HealthCheckHandler
	Analyze     *handlers.AnalyzeHandler
	OCR         *handlers.OCRHandler
	Model       *handlers.ModelHandler
	Assessments *handlers.AssessmentHandler
	Auth        *handlers.AuthHandler
}

// RouterConfig carries what the middleware chain needs
type RouterConfig struct {
	Server   config.ServerConfig
	Security config.SecurityConfig
	Tokens   services.TokenServiceInterface
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// NewRouter builds the echo instance. ctx bounds the rate limiter's cleanup loop.
func NewRouter(ctx context.Context, rc RouterConfig, h Handlers) *echo.Echo {
	log := rc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	gatherer := rc.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(log)

	e.Use(middleware.PanicRecovery(log))
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: rc.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.TraceIDHeader,
		},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	if rc.Server.BodyLimit != "" {
		e.Use(echomw.BodyLimit(rc.Server.BodyLimit))
	}
	if rc.Security.RateLimitPerSecond > 0 {
		e.Use(middleware.RateLimiter(ctx, rc.Security.RateLimitPerSecond, rc.Security.RateLimitBurst))
	}

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")
	api.POST("/auth/token", h.Auth.Token)
	api.POST("/analyze", h.Analyze.Analyze)
	api.POST("/analyze/batch", h.Analyze.AnalyzeBatch)
	api.POST("/ocr", h.OCR.Extract)

	api.GET("/model", h.Model.Info)
	api.POST("/model/retrain", h.Model.Retrain, middleware.RequireOperator(rc.Tokens))

	api.GET("/assessments", h.Assessments.List)
	api.GET("/assessments/stats", h.Assessments.Stats)
	api.GET("/assessments/:id", h.Assessments.Get)

	return e
}

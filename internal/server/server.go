package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"creditnext/internal/config"
	"creditnext/internal/database"
	"creditnext/internal/handlers"
	"creditnext/internal/repositories"
	"creditnext/internal/scoring"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Server owns the HTTP listener and everything wired behind it
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	echo   *echo.Echo
	db     *database.DB
	store  *scoring.ModelStore
	cancel context.CancelFunc
	close  []func()
}

type options struct {
	registry     *prometheus.Registry
	trainOptions []scoring.TrainOption
	noDatabase   bool
}

type Option func(*options)

// WithRegistry registers service metrics on reg and serves /metrics from it
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithTrainOptions appends scoring options after the configured ones
func WithTrainOptions(opts ...scoring.TrainOption) Option {
	return func(o *options) { o.trainOptions = append(o.trainOptions, opts...) }
}

// WithoutDatabase runs without assessment history
func WithoutDatabase() Option {
	return func(o *options) { o.noDatabase = true }
}

// New wires configuration, storage, the model store, the OCR pipeline and the
// HTTP router. The returned server does not listen until Start is called.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...Option) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Server{cfg: cfg, log: log, cancel: cancel}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if o.registry != nil {
		registerer, gatherer = o.registry, o.registry
	}
	metrics := services.NewPrometheusMetrics(registerer)
	audit := services.NewAuditLogger(log)

	var (
		repo   repositories.AssessmentRepositoryInterface
		health handlers.DatabaseChecker
	)
	if !o.noDatabase {
		db, err := database.Initialize(cfg, log)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.db = db
		repo = repositories.NewAssessmentRepository(db.DB)
		health = db
	}

	trainOpts := append(services.TrainOptions(&cfg.Model, log), o.trainOptions...)
	s.store = scoring.NewModelStore(cfg.Model.Seed, log, trainOpts...)

	breakerCfg := services.DefaultCircuitBreakerConfig("llm")
	breakerCfg.OnStateChange = services.BreakerStateRecorder(metrics, audit)
	pipeline, closePipeline := services.NewOCRPipeline(ctx, &cfg.OCR, services.NewCircuitBreaker(breakerCfg), log)
	s.close = append(s.close, closePipeline)

	tokens := services.NewTokenService(&cfg.JWT)
	assessments := services.NewAssessmentService(s.store, repo, metrics, audit, services.AssessmentLimits{
		MaxTransactions: cfg.Security.MaxTransactions,
		MaxBatchLedgers: cfg.Security.MaxBatchLedgers,
	})
	modelService := services.NewModelService(s.store, metrics, audit, cfg.Model.Seed)
	ocrService := services.NewOCRService(pipeline, metrics, audit, cfg.OCR.MaxUploadBytes)
	authService := services.NewAuthService(cfg.Security.OperatorUsername, cfg.Security.OperatorPasswordHash, tokens, log)

	s.echo = NewRouter(ctx, RouterConfig{
		Server:   cfg.Server,
		Security: cfg.Security,
		Tokens:   tokens,
		Gatherer: gatherer,
		Logger:   log,
	}, Handlers{
		Health:      handlers.NewHealthCheckHandler(health, modelService),
		Analyze:     handlers.NewAnalyzeHandler(assessments),
		OCR:         handlers.NewOCRHandler(ocrService, cfg.OCR.MaxUploadBytes),
		Model:       handlers.NewModelHandler(modelService),
		Assessments: handlers.NewAssessmentHandler(assessments),
		Auth:        handlers.NewAuthHandler(authService),
	})
	s.echo.Server.ReadTimeout = cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = cfg.Server.WriteTimeout

	return s, nil
}

// Echo exposes the router, mainly for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Store returns the model store backing the service
func (s *Server) Store() *scoring.ModelStore {
	return s.store
}

// WarmUp trains the default model in the background
func (s *Server) WarmUp(ctx context.Context) {
	go func() {
		if _, err := s.store.Get(ctx); err != nil {
			s.log.Error("Model warm-up failed", zap.Error(err))
			return
		}
		s.log.Info("Model ready")
	}()
}

// Start listens until Shutdown is called; a clean shutdown returns nil
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.log.Info("Server starting",
		zap.String("address", addr),
		zap.String("environment", s.cfg.Server.Environment),
		zap.String("database", s.databaseDriver()),
		zap.Bool("llm_enabled", s.cfg.OCR.LLMEnabled()),
	)

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and releases every resource
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	err := s.echo.Shutdown(ctx)

	s.cancel()
	for _, fn := range s.close {
		fn()
	}
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			s.log.Error("Failed to close database", zap.Error(cerr))
		}
	}
	return err
}

func (s *Server) databaseDriver() string {
	if s.db == nil {
		return "disabled"
	}
	return s.db.Driver()
}

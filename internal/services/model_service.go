package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creditnext/internal/config"
	"creditnext/internal/scoring"

	"go.uber.org/zap"
)

var (
	ErrInvalidSeed   = errors.New("seed must not be negative")
	ErrRetrainFailed = errors.New("model retraining failed")
)

type ModelService struct {
	store       ModelStoreInterface
	metrics     MetricsRecorderInterface
	audit       AuditLoggerInterface
	defaultSeed int64
}

func NewModelService(store ModelStoreInterface, metrics MetricsRecorderInterface, audit AuditLoggerInterface, defaultSeed int64) ModelServiceInterface {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if audit == nil {
		audit = NewAuditLogger(nil)
	}
	return &ModelService{
		store:       store,
		metrics:     metrics,
		audit:       audit,
		defaultSeed: defaultSeed,
	}
}

// Info returns the active artifact, training the default one if needed
func (s *ModelService) Info(ctx context.Context) (*scoring.Artifact, error) {
	artifact, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelNotReady, err)
	}
	return artifact, nil
}

func (s *ModelService) Ready() bool {
	return s.store.Ready()
}

// Retrain trains on seed (the configured seed when nil) and swaps the artifact in
func (s *ModelService) Retrain(ctx context.Context, seed *int64) (*scoring.Artifact, error) {
	target := s.defaultSeed
	if seed != nil {
		target = *seed
	}
	if target < 0 {
		return nil, ErrInvalidSeed
	}

	start := time.Now()
	artifact, err := s.store.Retrain(ctx, target)
	duration := time.Since(start)
	if err != nil {
		s.metrics.IncrementCounter("model.retrain", map[string]string{"status": "failed"})
		s.audit.LogModelRetrainFailed(ctx, target, err)
		return nil, fmt.Errorf("%w: %w", ErrRetrainFailed, err)
	}

	auc := artifact.Holdout().AUC
	s.metrics.IncrementCounter("model.retrain", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("model.training", duration)
	s.metrics.RecordGauge("model.holdout_auc", auc, nil)
	s.audit.LogModelRetrained(ctx, target, artifact.Backend(), auc, duration)

	return artifact, nil
}

// TrainOptions maps the model configuration onto training options
func TrainOptions(cfg *config.ModelConfig, logger *zap.Logger) []scoring.TrainOption {
	synthetic := scoring.DefaultSyntheticConfig()
	if cfg.Samples > 0 {
		synthetic.Samples = cfg.Samples
	}

	booster := scoring.DefaultBoosterConfig()
	if cfg.Trees > 0 {
		booster.Trees = cfg.Trees
	}
	if cfg.MaxDepth > 0 {
		booster.MaxDepth = cfg.MaxDepth
	}
	if cfg.LearningRate > 0 {
		booster.LearningRate = cfg.LearningRate
	}

	opts := []scoring.TrainOption{
		scoring.WithSyntheticConfig(synthetic),
		scoring.WithBoosterConfig(booster),
	}
	if cfg.BackgroundSize > 0 {
		opts = append(opts, scoring.WithBackgroundSize(cfg.BackgroundSize))
	}
	if !cfg.Explainer {
		opts = append(opts, scoring.WithoutExplainer())
	}
	if logger != nil {
		opts = append(opts, scoring.WithLogger(logger))
	}
	return opts
}

package scoring

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ModelStore lazily trains the default artifact once and swaps in retrained ones atomically
type ModelStore struct {
	seed    int64
	opts    []TrainOption
	logger  *zap.Logger
	trainFn func(seed int64, opts ...TrainOption) (*Artifact, error)

	once    sync.Once
	initErr error
	current atomic.Pointer[Artifact]
	group   singleflight.Group
}

func NewModelStore(seed int64, logger *zap.Logger, opts ...TrainOption) *ModelStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelStore{
		seed:    seed,
		opts:    append([]TrainOption{WithLogger(logger)}, opts...),
		logger:  logger,
		trainFn: Train,
	}
}

// Get returns the current artifact, training it on first use.
// Concurrent first callers block on the same training run.
func (s *ModelStore) Get(ctx context.Context) (*Artifact, error) {
	if a := s.current.Load(); a != nil {
		return a, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.once.Do(func() {
		s.logger.Info("Training default model", zap.Int64("seed", s.seed))
		a, err := s.trainFn(s.seed, s.opts...)
		if err != nil {
			s.initErr = fmt.Errorf("failed to train default model: %w", err)
			return
		}
		s.current.CompareAndSwap(nil, a)
	})

	if a := s.current.Load(); a != nil {
		return a, nil
	}
	return nil, s.initErr
}

// Ready reports whether an artifact has been loaded
func (s *ModelStore) Ready() bool {
	return s.current.Load() != nil
}

// Retrain trains a new artifact for seed and replaces the current one.
// Concurrent retrains for the same seed share one training run.
func (s *ModelStore) Retrain(ctx context.Context, seed int64) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err, shared := s.group.Do(fmt.Sprintf("seed-%d", seed), func() (interface{}, error) {
		return s.trainFn(seed, s.opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrain model: %w", err)
	}

	a := v.(*Artifact)
	s.current.Store(a)
	s.logger.Info("Model replaced",
		zap.Int64("seed", seed),
		zap.String("backend", a.Backend()),
		zap.Bool("shared", shared),
	)
	return a, nil
}

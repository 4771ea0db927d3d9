package scoring

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"creditnext/internal/models"
)

// DefaultBackgroundSize caps the explainer background sample
const DefaultBackgroundSize = 256

// Artifact is an immutable trained model bundle.
// It is safe to share between goroutines.
type Artifact struct {
	seed          int64
	classifier    Classifier
	scaler        *StandardScaler
	featureOrder  [models.NumFeatures]string
	explainer     Attributor
	background    []Row
	holdout       HoldoutMetrics
	trainSamples  int
	positiveRate  float64
	trainedAt     time.Time
	trainDuration time.Duration
}

func (a *Artifact) Seed() int64 {
	return a.seed
}

func (a *Artifact) Classifier() Classifier {
	return a.classifier
}

func (a *Artifact) Scaler() *StandardScaler {
	return a.scaler
}

// Backend names the classifier that was fitted
func (a *Artifact) Backend() string {
	return a.classifier.Name()
}

// FeatureOrder returns the column order the scaler and classifier were fit on
func (a *Artifact) FeatureOrder() [models.NumFeatures]string {
	return a.featureOrder
}

// Explainer returns the attribution engine, or nil when none was built
func (a *Artifact) Explainer() Attributor {
	return a.explainer
}

func (a *Artifact) HasExplainer() bool {
	return a.explainer != nil
}

// Background returns a copy of the standardized background sample
func (a *Artifact) Background() []Row {
	return append([]Row(nil), a.background...)
}

func (a *Artifact) Holdout() HoldoutMetrics {
	return a.holdout
}

func (a *Artifact) TrainSamples() int {
	return a.trainSamples
}

// PositiveRate returns the default rate of the training split
func (a *Artifact) PositiveRate() float64 {
	return a.positiveRate
}

func (a *Artifact) TrainedAt() time.Time {
	return a.trainedAt
}

func (a *Artifact) TrainDuration() time.Duration {
	return a.trainDuration
}

type trainOptions struct {
	synthetic      SyntheticConfig
	booster        BoosterConfig
	trainers       []Trainer
	rng            RandomSource
	explain        bool
	backgroundSize int
	progress       func(done, total int)
	logger         *zap.Logger
	now            func() time.Time
}

// TrainOption customizes Train
type TrainOption func(*trainOptions)

func WithSyntheticConfig(cfg SyntheticConfig) TrainOption {
	return func(o *trainOptions) { o.synthetic = cfg }
}

func WithBoosterConfig(cfg BoosterConfig) TrainOption {
	return func(o *trainOptions) { o.booster = cfg }
}

// WithTrainers replaces the default boosting-then-logistic chain
func WithTrainers(trainers ...Trainer) TrainOption {
	return func(o *trainOptions) { o.trainers = trainers }
}

// WithRandomSource replaces the seeded source used for data generation and splitting
func WithRandomSource(rng RandomSource) TrainOption {
	return func(o *trainOptions) { o.rng = rng }
}

// WithoutExplainer skips building the Shapley explainer; scoring then uses heuristic attributions
func WithoutExplainer() TrainOption {
	return func(o *trainOptions) { o.explain = false }
}

func WithBackgroundSize(n int) TrainOption {
	return func(o *trainOptions) { o.backgroundSize = n }
}

// WithProgress reports boosting rounds as they complete
func WithProgress(fn func(done, total int)) TrainOption {
	return func(o *trainOptions) { o.progress = fn }
}

func WithLogger(logger *zap.Logger) TrainOption {
	return func(o *trainOptions) { o.logger = logger }
}

func WithClock(now func() time.Time) TrainOption {
	return func(o *trainOptions) { o.now = now }
}

// Train generates the synthetic population for seed, fits the scaler and classifier,
// and builds the explainer. The same seed and options always yield the same model.
func Train(seed int64, opts ...TrainOption) (*Artifact, error) {
	o := &trainOptions{
		synthetic:      DefaultSyntheticConfig(),
		booster:        DefaultBoosterConfig(),
		explain:        true,
		backgroundSize: DefaultBackgroundSize,
		logger:         zap.NewNop(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	started := o.now()
	rng := o.rng
	if rng == nil {
		rng = NewRandomSource(seed)
	}

	data := GenerateDataset(rng, o.synthetic)
	if data.Len() == 0 {
		return nil, ErrEmptyTrainingSet
	}
	train, holdout := data.Split(rng, o.synthetic.HoldoutFraction)

	scaler, err := FitStandardScaler(train.X)
	if err != nil {
		return nil, fmt.Errorf("failed to fit scaler: %w", err)
	}
	trainX := scaler.TransformAll(train.X)

	trainers := o.trainers
	if len(trainers) == 0 {
		trainers = []Trainer{
			GradientBoostingTrainer{Config: o.booster, Seed: seed, Progress: o.progress},
			DefaultLogisticTrainer(),
		}
	}

	chain := TrainerChain{Trainers: trainers, Logger: o.logger}
	clf, err := chain.Fit(trainX, train.Y)
	if err != nil {
		return nil, err
	}

	bgSize := o.backgroundSize
	if bgSize <= 0 || bgSize > len(trainX) {
		bgSize = len(trainX)
	}
	background := append([]Row(nil), trainX[:bgSize]...)

	artifact := &Artifact{
		seed:         seed,
		classifier:   clf,
		scaler:       scaler,
		featureOrder: models.FeatureNames,
		background:   background,
		holdout:      EvaluateHoldout(clf, scaler.TransformAll(holdout.X), holdout.Y),
		trainSamples: train.Len(),
		positiveRate: train.PositiveRate(),
	}

	if o.explain {
		explainer, err := NewShapleyExplainer(clf, background)
		if err != nil {
			o.logger.Warn("Explainer unavailable, scoring will use heuristic attributions", zap.Error(err))
		} else {
			artifact.explainer = explainer
		}
	}

	artifact.trainedAt = o.now().UTC()
	artifact.trainDuration = o.now().Sub(started)

	o.logger.Info("Model trained",
		zap.Int64("seed", seed),
		zap.String("backend", clf.Name()),
		zap.Int("train_samples", artifact.trainSamples),
		zap.Int("holdout_samples", artifact.holdout.Samples),
		zap.Float64("holdout_auc", artifact.holdout.AUC),
		zap.Bool("explainer", artifact.HasExplainer()),
	)

	return artifact, nil
}

package scoring

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

var (
	ErrNoClassifier         = errors.New("no trainer produced a classifier")
	ErrSingleClass          = errors.New("training labels contain a single class")
	ErrInvalidLabels        = errors.New("training labels must be 0 or 1")
	ErrNonFiniteFeatures    = errors.New("training features must be finite")
	ErrInvalidBoosterConfig = errors.New("invalid booster configuration")
)

// Classifier is a fitted binary model over standardized rows.
// Margin is in log-odds of default.
type Classifier interface {
	Name() string
	Margin(x Row) float64
	PredictProba(x Row) float64
}

// Trainer fits a Classifier on standardized rows with 0/1 default labels
type Trainer interface {
	Name() string
	Fit(X []Row, y []float64) (Classifier, error)
}

// TrainerChain tries each trainer in order and returns the first classifier
// that fits and produces finite margins.
type TrainerChain struct {
	Trainers []Trainer
	Logger   *zap.Logger
}

func (c TrainerChain) Name() string {
	return "chain"
}

func (c TrainerChain) Fit(X []Row, y []float64) (Classifier, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var errs []error
	for _, trainer := range c.Trainers {
		clf, err := trainer.Fit(X, y)
		if err == nil {
			err = probeClassifier(clf, X)
		}
		if err == nil {
			return clf, nil
		}

		logger.Warn("Trainer failed, falling back",
			zap.String("trainer", trainer.Name()),
			zap.Error(err),
		)
		errs = append(errs, fmt.Errorf("%s: %w", trainer.Name(), err))
	}

	if len(errs) == 0 {
		return nil, ErrNoClassifier
	}
	return nil, fmt.Errorf("%w: %w", ErrNoClassifier, errors.Join(errs...))
}

func probeClassifier(clf Classifier, X []Row) error {
	if clf == nil {
		return errors.New("trainer returned a nil classifier")
	}
	if len(X) == 0 {
		return nil
	}
	m := clf.Margin(X[0])
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("classifier %s produced a non-finite margin", clf.Name())
	}
	return nil
}

// validateTrainingSet checks shapes and labels and returns the positive rate
func validateTrainingSet(X []Row, y []float64) (float64, error) {
	if len(X) == 0 {
		return 0, ErrEmptyTrainingSet
	}
	if len(X) != len(y) {
		return 0, fmt.Errorf("feature rows (%d) and labels (%d) differ in length", len(X), len(y))
	}

	var positives float64
	for i, label := range y {
		if label != 0 && label != 1 {
			return 0, ErrInvalidLabels
		}
		positives += label
		for _, v := range X[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNonFiniteFeatures
			}
		}
	}

	rate := positives / float64(len(y))
	if rate == 0 || rate == 1 {
		return 0, ErrSingleClass
	}
	return rate, nil
}

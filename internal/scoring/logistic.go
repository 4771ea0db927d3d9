package scoring

import (
	"fmt"
	"math"

	"creditnext/internal/models"
)

// LogisticTrainer fits an L2-regularized logistic regression by full-batch gradient descent.
// Weights are projected onto the monotone directions after every step.
type LogisticTrainer struct {
	Epochs       int
	LearningRate float64
	L2           float64
	Monotone     [models.NumFeatures]int
}

// DefaultLogisticTrainer returns the fallback trainer used when boosting fails
func DefaultLogisticTrainer() LogisticTrainer {
	return LogisticTrainer{
		Epochs:       400,
		LearningRate: 0.5,
		L2:           1e-3,
		Monotone:     DefaultMonotoneConstraints,
	}
}

func (t LogisticTrainer) Name() string {
	return "logistic"
}

func (t LogisticTrainer) Fit(X []Row, y []float64) (Classifier, error) {
	if t.Epochs <= 0 || t.LearningRate <= 0 || t.L2 < 0 {
		return nil, fmt.Errorf("invalid logistic configuration: epochs=%d learning_rate=%g l2=%g", t.Epochs, t.LearningRate, t.L2)
	}

	rate, err := validateTrainingSet(X, y)
	if err != nil {
		return nil, err
	}

	model := &Logistic{intercept: logit(rate)}
	n := float64(len(X))

	for epoch := 0; epoch < t.Epochs; epoch++ {
		var gw Row
		var gb float64
		for i, x := range X {
			residual := model.PredictProba(x) - y[i]
			for j, v := range x {
				gw[j] += residual * v
			}
			gb += residual
		}

		for j := range model.weights {
			step := gw[j]/n + t.L2*model.weights[j]
			model.weights[j] -= t.LearningRate * step
			switch t.Monotone[j] {
			case 1:
				model.weights[j] = math.Max(model.weights[j], 0)
			case -1:
				model.weights[j] = math.Min(model.weights[j], 0)
			}
		}
		model.intercept -= t.LearningRate * gb / n
	}

	return model, nil
}

// Logistic is a fitted linear model in log-odds space
type Logistic struct {
	weights   Row
	intercept float64
}

func (l *Logistic) Name() string {
	return "logistic"
}

func (l *Logistic) Margin(x Row) float64 {
	m := l.intercept
	for j, v := range x {
		m += l.weights[j] * v
	}
	return m
}

func (l *Logistic) PredictProba(x Row) float64 {
	return sigmoid(l.Margin(x))
}

// Weights returns the fitted coefficients
func (l *Logistic) Weights() Row {
	return l.weights
}

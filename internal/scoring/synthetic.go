package scoring

import (
	"math"

	"creditnext/internal/models"
)

// Row is one feature vector in canonical column order
type Row = [models.NumFeatures]float64

// SyntheticConfig shapes the generated training population
type SyntheticConfig struct {
	Samples         int
	ProfitMean      float64
	ProfitStdDev    float64
	ProfitMax       float64
	HoldoutFraction float64
}

// DefaultSyntheticConfig returns the production population parameters
func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Samples:         3500,
		ProfitMean:      9000,
		ProfitStdDev:    6500,
		ProfitMax:       70000,
		HoldoutFraction: 0.2,
	}
}

// industry factor distribution of the synthetic population
var industryFactorLevels = []struct {
	factor float64
	cum    float64
}{
	{models.FactorOther, 0.25},
	{models.FactorRetail, 0.70},
	{models.FactorFreelance, 1.0},
}

// Dataset is a labelled feature matrix; label 1 means default
type Dataset struct {
	X []Row
	Y []float64
}

// Len returns the number of samples
func (d Dataset) Len() int {
	return len(d.X)
}

// PositiveRate returns the share of default labels
func (d Dataset) PositiveRate() float64 {
	if len(d.Y) == 0 {
		return 0
	}
	var sum float64
	for _, y := range d.Y {
		sum += y
	}
	return sum / float64(len(d.Y))
}

// GenerateDataset draws a labelled synthetic population.
// Columns are drawn one at a time in canonical order, then the label draws.
func GenerateDataset(rng RandomSource, cfg SyntheticConfig) Dataset {
	n := cfg.Samples
	if n <= 0 {
		return Dataset{}
	}

	expenseRatio := make([]float64, n)
	for i := range expenseRatio {
		expenseRatio[i] = 0.15 + 0.70*rng.Float64()
	}

	consistency := make([]float64, n)
	for i := range consistency {
		consistency[i] = 0.1 + 0.85*rng.Float64()
	}

	industryFactor := make([]float64, n)
	for i := range industryFactor {
		industryFactor[i] = drawIndustryFactor(rng.Float64())
	}

	profit := make([]float64, n)
	for i := range profit {
		p := cfg.ProfitMean + cfg.ProfitStdDev*rng.NormFloat64()
		profit[i] = math.Min(math.Max(p, 0), cfg.ProfitMax)
	}

	data := Dataset{X: make([]Row, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		data.X[i] = Row{
			expenseRatio[i],
			consistency[i],
			industryFactor[i],
			profit[i],
			math.Log1p(profit[i]),
		}
		p := sigmoid(LabelLogit(expenseRatio[i], consistency[i], industryFactor[i], profit[i]))
		if rng.Float64() < p {
			data.Y[i] = 1
		}
	}

	return data
}

// LabelLogit is the ground-truth default log-odds of the synthetic population
func LabelLogit(expenseRatio, consistency, industryFactor, profit float64) float64 {
	return 2.2*(expenseRatio-0.5) -
		2.8*(consistency-0.6) -
		0.00008*(profit-12000) -
		1.2*(industryFactor-0.2)
}

func drawIndustryFactor(u float64) float64 {
	for _, level := range industryFactorLevels {
		if u < level.cum {
			return level.factor
		}
	}
	return industryFactorLevels[len(industryFactorLevels)-1].factor
}

// Split shuffles the dataset and returns (train, holdout).
// The holdout size is ceil(fraction * n), capped so training keeps at least one row.
func (d Dataset) Split(rng RandomSource, fraction float64) (Dataset, Dataset) {
	n := d.Len()
	if n == 0 || fraction <= 0 {
		return d, Dataset{}
	}

	nHoldout := int(math.Ceil(fraction * float64(n)))
	if nHoldout >= n {
		nHoldout = n - 1
	}

	perm := rng.Perm(n)
	train := Dataset{X: make([]Row, 0, n-nHoldout), Y: make([]float64, 0, n-nHoldout)}
	holdout := Dataset{X: make([]Row, 0, nHoldout), Y: make([]float64, 0, nHoldout)}

	for rank, idx := range perm {
		if rank < nHoldout {
			holdout.X = append(holdout.X, d.X[idx])
			holdout.Y = append(holdout.Y, d.Y[idx])
			continue
		}
		train.X = append(train.X, d.X[idx])
		train.Y = append(train.Y, d.Y[idx])
	}

	return train, holdout
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

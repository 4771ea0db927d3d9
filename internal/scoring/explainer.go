package scoring

import (
	"errors"
	"fmt"
	"math"

	"creditnext/internal/models"
)

var (
	ErrNilModel             = errors.New("explainer requires a model")
	ErrEmptyBackground      = errors.New("explainer requires a non-empty background sample")
	ErrNonFiniteAttribution = errors.New("attribution produced a non-finite value")
)

// Attribution splits a model margin into a base value plus one signed value per feature.
// Values are in log-odds of default: positive values push towards default.
type Attribution struct {
	BaseValue float64
	Values    Row
}

// Sum returns BaseValue plus every feature value
func (a Attribution) Sum() float64 {
	total := a.BaseValue
	for _, v := range a.Values {
		total += v
	}
	return total
}

// Attributor explains a standardized row
type Attributor interface {
	Attribute(x Row) (Attribution, error)
}

const numCoalitions = 1 << models.NumFeatures

// ShapleyExplainer computes exact interventional Shapley values over a background sample.
// With five features every coalition is enumerated, so BaseValue plus the values
// always equals the model margin of the explained row.
type ShapleyExplainer struct {
	model      Classifier
	background []Row
	baseValue  float64
	weights    [models.NumFeatures]float64
}

// NewShapleyExplainer prepares an explainer for model against a standardized background sample
func NewShapleyExplainer(model Classifier, background []Row) (*ShapleyExplainer, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if len(background) == 0 {
		return nil, ErrEmptyBackground
	}

	e := &ShapleyExplainer{
		model:      model,
		background: append([]Row(nil), background...),
	}

	for _, row := range e.background {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("background: %w", ErrNonFiniteFeatures)
			}
		}
		e.baseValue += model.Margin(row)
	}
	e.baseValue /= float64(len(e.background))
	if math.IsNaN(e.baseValue) || math.IsInf(e.baseValue, 0) {
		return nil, ErrNonFiniteAttribution
	}

	// weight of a coalition of size s: s!(n-s-1)!/n!
	n := models.NumFeatures
	for s := 0; s < n; s++ {
		e.weights[s] = factorial(s) * factorial(n-s-1) / factorial(n)
	}

	return e, nil
}

// BaseValue returns the mean background margin
func (e *ShapleyExplainer) BaseValue() float64 {
	return e.baseValue
}

func (e *ShapleyExplainer) Attribute(x Row) (Attribution, error) {
	var value [numCoalitions]float64
	for mask := 0; mask < numCoalitions; mask++ {
		value[mask] = e.coalitionValue(x, mask)
	}

	attr := Attribution{BaseValue: e.baseValue}
	for j := 0; j < models.NumFeatures; j++ {
		bit := 1 << j
		var phi float64
		for mask := 0; mask < numCoalitions; mask++ {
			if mask&bit != 0 {
				continue
			}
			phi += e.weights[popcount(mask)] * (value[mask|bit] - value[mask])
		}
		attr.Values[j] = phi
	}

	if math.IsNaN(attr.BaseValue) || math.IsInf(attr.BaseValue, 0) {
		return Attribution{}, ErrNonFiniteAttribution
	}
	for _, v := range attr.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Attribution{}, ErrNonFiniteAttribution
		}
	}

	return attr, nil
}

// coalitionValue averages the margin with features in mask taken from x and the rest from the background
func (e *ShapleyExplainer) coalitionValue(x Row, mask int) float64 {
	if mask == numCoalitions-1 {
		return e.model.Margin(x)
	}
	if mask == 0 {
		return e.baseValue
	}

	var total float64
	for _, bg := range e.background {
		row := bg
		for j := 0; j < models.NumFeatures; j++ {
			if mask&(1<<j) != 0 {
				row[j] = x[j]
			}
		}
		total += e.model.Margin(row)
	}
	return total / float64(len(e.background))
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func popcount(mask int) int {
	count := 0
	for mask != 0 {
		count += mask & 1
		mask >>= 1
	}
	return count
}

// HeuristicContributions returns fixed linear attributions over raw feature values.
// Positive values favour creditworthiness. The base value of a heuristic explanation is 0.
func HeuristicContributions(fv models.FeatureVector) map[string]float64 {
	profit := math.Max(fv.ProxyNetProfit, 0)
	contributions := map[string]float64{
		models.FeatureConsistency:      (fv.Consistency - 0.55) * 1.8,
		models.FeatureExpenseRatio:     -(fv.ExpenseRatio - 0.45) * 2.2,
		models.FeatureIndustryFactor:   (fv.IndustryFactor - 0.2) * 1.4,
		models.FeatureProxyNetProfit:   (math.Log1p(profit) - 8.5) * 0.55,
		models.FeatureCashflowStrength: (fv.CashflowStrength - 8.0) * 0.35,
	}
	for name, v := range contributions {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			contributions[name] = 0
		}
	}
	return contributions
}

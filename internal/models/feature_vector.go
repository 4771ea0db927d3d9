package models

import "math"

// NumFeatures is the width of the scoring model input
const NumFeatures = 5

// Canonical feature names. The scaler and the classifier are fit against this column order.
const (
	FeatureExpenseRatio     = "expense_ratio"
	FeatureConsistency      = "consistency"
	FeatureIndustryFactor   = "industry_factor"
	FeatureProxyNetProfit   = "proxy_net_profit"
	FeatureCashflowStrength = "cashflow_strength"
)

// FeatureNames lists the features in canonical order
var FeatureNames = [NumFeatures]string{
	FeatureExpenseRatio,
	FeatureConsistency,
	FeatureIndustryFactor,
	FeatureProxyNetProfit,
	FeatureCashflowStrength,
}

// FeatureVector describes the spending behaviour of a ledger
type FeatureVector struct {
	ExpenseRatio     float64 `json:"expense_ratio"`
	Consistency      float64 `json:"consistency"`
	IndustryFactor   float64 `json:"industry_factor"`
	ProxyNetProfit   float64 `json:"proxy_net_profit"`
	CashflowStrength float64 `json:"cashflow_strength"`
}

// Values returns the features in canonical order
func (fv FeatureVector) Values() [NumFeatures]float64 {
	return [NumFeatures]float64{
		fv.ExpenseRatio,
		fv.Consistency,
		fv.IndustryFactor,
		fv.ProxyNetProfit,
		fv.CashflowStrength,
	}
}

// FeatureVectorFromValues builds a vector from canonical-order values
func FeatureVectorFromValues(values [NumFeatures]float64) FeatureVector {
	return FeatureVector{
		ExpenseRatio:     values[0],
		Consistency:      values[1],
		IndustryFactor:   values[2],
		ProxyNetProfit:   values[3],
		CashflowStrength: values[4],
	}
}

// Map returns the features keyed by name
func (fv FeatureVector) Map() map[string]float64 {
	values := fv.Values()
	out := make(map[string]float64, NumFeatures)
	for i, name := range FeatureNames {
		out[name] = values[i]
	}
	return out
}

// IsFinite reports whether every feature is a finite number
func (fv FeatureVector) IsFinite() bool {
	for _, v := range fv.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

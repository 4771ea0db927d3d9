// Package features turns a ledger into the fixed-width vector the scoring model consumes.
package features

import (
	"math"
	"sort"

	"creditnext/internal/models"

	"github.com/shopspring/decimal"
)

const (
	neutralConsistency   = 0.5
	singleDayConsistency = 0.7
	consistencyEpsilon   = 1e-6
	minRatioDenominator  = 1.0
	maxFlowExponent      = 150

	// MaxProfitMagnitude caps the profit fed to the model
	MaxProfitMagnitude = 1e18
)

// Extract derives the feature vector of a ledger.
// proxyNetProfit is the profit figure fed to the model; callers decide whether it is industry-adjusted.
func Extract(transactions []models.Transaction, industryFactor float64, proxyNetProfit decimal.Decimal) models.FeatureVector {
	income, expense := models.SumByType(transactions)
	profit := boundedProfit(proxyNetProfit)

	return models.FeatureVector{
		ExpenseRatio:     ExpenseRatio(income, expense),
		Consistency:      Consistency(transactions),
		IndustryFactor:   industryFactor,
		ProxyNetProfit:   profit,
		CashflowStrength: CashflowStrength(profit),
	}
}

func boundedProfit(profit decimal.Decimal) float64 {
	limit := decimal.NewFromFloat(MaxProfitMagnitude)
	switch {
	case profit.GreaterThan(limit):
		return MaxProfitMagnitude
	case profit.LessThan(limit.Neg()):
		return -MaxProfitMagnitude
	default:
		return profit.InexactFloat64()
	}
}

// ExpenseRatio returns expense / max(income+expense, 1).
// The division runs on decimals so totals beyond float64 range still give a ratio.
func ExpenseRatio(income, expense decimal.Decimal) float64 {
	total := income.Add(expense)
	if total.LessThan(decimal.NewFromFloat(minRatioDenominator)) {
		total = decimal.NewFromFloat(minRatioDenominator)
	}
	return clamp(expense.Div(total).InexactFloat64(), 0, 1)
}

// CashflowStrength log-compresses positive profit; losses map to zero
func CashflowStrength(profit float64) float64 {
	return math.Log1p(math.Max(profit, 0))
}

// Consistency scores the day-to-day stability of net cash flow in [0,1]
func Consistency(transactions []models.Transaction) float64 {
	daily := make(map[int64]decimal.Decimal)

	for i := range transactions {
		date, ok := transactions[i].ParsedDate()
		if !ok {
			continue
		}
		day := date.Unix()
		daily[day] = daily[day].Add(transactions[i].SignedAmount())
	}

	switch len(daily) {
	case 0:
		return neutralConsistency
	case 1:
		return singleDayConsistency
	}

	// fixed summation order keeps the result bit-stable
	days := make([]int64, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	// the score is scale-free, so flows whose squares would overflow are divided by the largest one
	largest := decimal.Zero
	for _, day := range days {
		if abs := daily[day].Abs(); abs.GreaterThan(largest) {
			largest = abs
		}
	}
	rescale := largest.GreaterThan(decimal.New(1, maxFlowExponent))

	flows := make([]float64, len(days))
	for i, day := range days {
		if rescale {
			flows[i] = daily[day].Div(largest).InexactFloat64()
		} else {
			flows[i] = daily[day].InexactFloat64()
		}
	}

	vol := populationStdDev(flows)
	avg := meanAbs(flows)

	return clamp(1-vol/(avg+consistencyEpsilon), 0, 1)
}

func populationStdDev(values []float64) float64 {
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

func meanAbs(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += math.Abs(v)
	}
	return sum / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

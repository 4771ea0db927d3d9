package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributionMethod names how the contributions of a score were obtained
type AttributionMethod string

const (
	AttributionShapley   AttributionMethod = "shapley"
	AttributionHeuristic AttributionMethod = "heuristic"
)

// RaisesRisk reports whether a contribution of this method pushes towards default.
// Shapley values are in log-odds of default, so positive is riskier; heuristic
// values score creditworthiness, so positive is safer.
func (m AttributionMethod) RaisesRisk(contribution float64) bool {
	if m == AttributionHeuristic {
		return contribution < 0
	}
	return contribution > 0
}

// ScoreResult is the output of a single scoring call
type ScoreResult struct {
	CreditScore        int                `json:"credit_score"`
	DefaultProbability float64            `json:"default_probability"`
	BaseValue          float64            `json:"base_value"`
	Contributions      map[string]float64 `json:"contributions"`
	Method             AttributionMethod  `json:"method"`
}

// Explanation is the caller-facing attribution block. The sign of Contributions
// depends on Method; see AttributionMethod.RaisesRisk.
type Explanation struct {
	BaseValue     float64            `json:"base_value"`
	Contributions map[string]float64 `json:"contributions"`
	PDefault      float64            `json:"p_default"`
	Method        AttributionMethod  `json:"method"`
}

// Evaluation is the full result of running a ledger through the pipeline
type Evaluation struct {
	Industry              Industry        `json:"industry"`
	IndustryFactor        float64         `json:"industry_factor"`
	ProxyNetProfit        decimal.Decimal `json:"proxy_net_profit"`
	UnadjustedNetProfit   decimal.Decimal `json:"unadjusted_net_profit"`
	MonthlyIncomeEstimate decimal.Decimal `json:"monthly_income_estimate"`
	Features              FeatureVector   `json:"features"`
	CreditScore           int             `json:"credit_score"`
	RiskGrade             RiskGrade       `json:"risk_grade"`
	RecommendedLoan       decimal.Decimal `json:"recommended_loan_amount"`
	Explanation           Explanation     `json:"explanation"`
	TransactionCount      int             `json:"transaction_count"`
}

// RecommendedLoanAmount multiplies the monthly income by the grade multiplier.
// Negative incomes are treated as zero.
func RecommendedLoanAmount(grade RiskGrade, monthlyIncome decimal.Decimal) decimal.Decimal {
	if monthlyIncome.IsNegative() {
		monthlyIncome = decimal.Zero
	}
	return monthlyIncome.Mul(decimal.NewFromFloat(grade.LoanMultiplier())).Round(2)
}

// AssessmentResult is one scored ledger; AssessmentID is nil when the record was not stored
type AssessmentResult struct {
	Evaluation   Evaluation
	AssessmentID *uuid.UUID
}

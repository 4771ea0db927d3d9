package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributionMethod_RaisesRisk(t *testing.T) {
	tests := []struct {
		method       AttributionMethod
		contribution float64
		want         bool
	}{
		{AttributionShapley, 0.3, true},
		{AttributionShapley, -0.3, false},
		{AttributionShapley, 0, false},
		{AttributionHeuristic, 0.3, false},
		{AttributionHeuristic, -0.3, true},
		{AttributionHeuristic, 0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.method.RaisesRisk(tt.contribution), "%s %v", tt.method, tt.contribution)
	}
}

func TestEvaluation_JSONFieldNames(t *testing.T) {
	eval := Evaluation{
		Industry:              IndustryFreelance,
		MonthlyIncomeEstimate: decimal.RequireFromString("11666.67"),
		RecommendedLoan:       decimal.NewFromInt(46667),
		Explanation:           Explanation{PDefault: 0.2, Method: AttributionShapley},
	}

	body, err := json.Marshal(eval)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))

	for _, key := range []string{
		"industry", "industry_factor", "proxy_net_profit", "monthly_income_estimate",
		"features", "credit_score", "risk_grade", "recommended_loan_amount", "explanation",
	} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "monthly_income_est")
	assert.JSONEq(t, `"11666.67"`, string(fields["monthly_income_estimate"]))
}

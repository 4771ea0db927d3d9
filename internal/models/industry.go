package models

import "github.com/shopspring/decimal"

// Industry is the keyword-classified economic sector of a ledger
type Industry string

const (
	IndustryFreelance Industry = "Freelance"
	IndustryRetail    Industry = "Retail"
	IndustryOther     Industry = "Other"
	IndustryUnknown   Industry = "Unknown"
)

// Industry risk-adjustment factors
const (
	FactorFreelance = 0.50
	FactorRetail    = 0.20
	FactorOther     = 0.10
	FactorUnknown   = 0.0
)

// MaxMonthlyIncomeEstimate caps the 30-day income projection
var MaxMonthlyIncomeEstimate = decimal.NewFromInt(1_000_000_000)

// IsValidIndustry checks if the industry is one of the known sectors
func IsValidIndustry(industry string) bool {
	switch Industry(industry) {
	case IndustryFreelance, IndustryRetail, IndustryOther, IndustryUnknown:
		return true
	default:
		return false
	}
}

// IndustryAssessment is derived per request from a ledger and never stored on its own
type IndustryAssessment struct {
	Industry              Industry        `json:"industry"`
	Factor                float64         `json:"industry_factor"`
	Income                decimal.Decimal `json:"income"`
	Expense               decimal.Decimal `json:"expense"`
	ProxyNetProfit        decimal.Decimal `json:"proxy_net_profit"`
	AdjustedNetProfit     decimal.Decimal `json:"adjusted_net_profit"`
	MonthlyIncomeEstimate decimal.Decimal `json:"monthly_income_estimate"`
}

// UnknownIndustryAssessment is the neutral result for an empty ledger
func UnknownIndustryAssessment() IndustryAssessment {
	return IndustryAssessment{
		Industry:              IndustryUnknown,
		Factor:                FactorUnknown,
		Income:                decimal.Zero,
		Expense:               decimal.Zero,
		ProxyNetProfit:        decimal.Zero,
		AdjustedNetProfit:     decimal.Zero,
		MonthlyIncomeEstimate: decimal.Zero,
	}
}

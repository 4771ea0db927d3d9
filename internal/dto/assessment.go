package dto

import (
	"time"

	"creditnext/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssessmentFilterParams are the query parameters of GET /api/v1/assessments
type AssessmentFilterParams struct {
	RiskGrade string `query:"risk_grade" validate:"risk_grade"`
	Industry  string `query:"industry" validate:"omitempty,oneof=Freelance Retail Other Unknown"`
	MinScore  *int   `query:"min_score" validate:"omitempty,gte=300,lte=900"`
	MaxScore  *int   `query:"max_score" validate:"omitempty,gte=300,lte=900"`
	Offset    int    `query:"offset" validate:"gte=0"`
	Limit     int    `query:"limit" validate:"gte=0,lte=100"`
}

// ToFilters converts query parameters into repository filters
func (p AssessmentFilterParams) ToFilters() models.AssessmentFilters {
	limit := p.Limit
	if limit == 0 {
		limit = 20
	}
	return models.AssessmentFilters{
		RiskGrade: p.RiskGrade,
		Industry:  p.Industry,
		MinScore:  p.MinScore,
		MaxScore:  p.MaxScore,
		Offset:    p.Offset,
		Limit:     limit,
	}
}

// AssessmentResponse is a stored assessment as returned by the API
type AssessmentResponse struct {
	ID                  uuid.UUID          `json:"assessment_id"`
	TraceID             string             `json:"trace_id,omitempty"`
	Industry            string             `json:"industry"`
	IndustryFactor      float64            `json:"industry_factor"`
	ProxyNetProfit      decimal.Decimal    `json:"proxy_net_profit"`
	UnadjustedNetProfit decimal.Decimal    `json:"unadjusted_net_profit"`
	MonthlyIncome       decimal.Decimal    `json:"monthly_income_estimate"`
	Features            map[string]float64 `json:"features"`
	Contributions       map[string]float64 `json:"contributions"`
	BaseValue           float64            `json:"base_value"`
	DefaultProbability  float64            `json:"p_default"`
	CreditScore         int                `json:"credit_score"`
	RiskGrade           string             `json:"risk_grade"`
	RiskGradeLabel      string             `json:"risk_grade_label"`
	RecommendedLoan     decimal.Decimal    `json:"recommended_loan_amount"`
	AttributionMethod   string             `json:"attribution_method"`
	ModelBackend        string             `json:"model_backend"`
	ModelSeed           int64              `json:"model_seed"`
	TransactionCount    int                `json:"transaction_count"`
	IntegrityHash       string             `json:"integrity_hash"`
	IntegrityVerified   bool               `json:"integrity_verified"`
	CreatedAt           time.Time          `json:"created_at"`
}

// NewAssessmentResponse maps a stored assessment and re-checks its integrity hash
func NewAssessmentResponse(a *models.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:                  a.ID,
		TraceID:             a.TraceID,
		Industry:            a.Industry,
		IndustryFactor:      a.IndustryFactor,
		ProxyNetProfit:      a.ProxyNetProfit,
		UnadjustedNetProfit: a.UnadjustedNetProfit,
		MonthlyIncome:       a.MonthlyIncome,
		Features:            a.Features,
		Contributions:       a.Contributions,
		BaseValue:           a.BaseValue,
		DefaultProbability:  a.DefaultProbability,
		CreditScore:         a.CreditScore,
		RiskGrade:           a.RiskGrade,
		RiskGradeLabel:      models.RiskGrade(a.RiskGrade).Label(),
		RecommendedLoan:     a.RecommendedLoan,
		AttributionMethod:   a.AttributionMethod,
		ModelBackend:        a.ModelBackend,
		ModelSeed:           a.ModelSeed,
		TransactionCount:    a.TransactionCount,
		IntegrityHash:       a.IntegrityHash,
		IntegrityVerified:   a.VerifyIntegrity(),
		CreatedAt:           a.CreatedAt,
	}
}

// ListAssessmentsResponse is a page of stored assessments
type ListAssessmentsResponse struct {
	Assessments []AssessmentResponse `json:"assessments"`
	Total       int64                `json:"total"`
	Offset      int                  `json:"offset"`
	Limit       int                  `json:"limit"`
}

// GradeDistributionResponse is the body of GET /api/v1/assessments/stats
type GradeDistributionResponse struct {
	Grades []models.GradeCount `json:"grades"`
	Total  int64               `json:"total"`
}

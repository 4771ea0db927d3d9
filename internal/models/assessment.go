package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreditScore = errors.New("credit score out of range")
	ErrInvalidRiskGrade   = errors.New("invalid risk grade")
	ErrInvalidIndustry    = errors.New("invalid industry")
)

// Assessment is a persisted evaluation
type Assessment struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TraceID             string          `gorm:"type:varchar(64);index" json:"trace_id,omitempty"`
	Industry            string          `gorm:"type:varchar(20);not null;index" json:"industry"`
	IndustryFactor      float64         `gorm:"not null" json:"industry_factor"`
	ProxyNetProfit      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"proxy_net_profit"`
	UnadjustedNetProfit decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unadjusted_net_profit"`
	MonthlyIncome       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"monthly_income_estimate"`
	Features            FloatMap        `gorm:"type:text" json:"features"`
	Contributions       FloatMap        `gorm:"type:text" json:"contributions"`
	BaseValue           float64         `json:"base_value"`
	DefaultProbability  float64         `gorm:"not null" json:"p_default"`
	CreditScore         int             `gorm:"not null;index" json:"credit_score"`
	RiskGrade           string          `gorm:"type:varchar(1);not null;index" json:"risk_grade"`
	RecommendedLoan     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"recommended_loan_amount"`
	AttributionMethod   string          `gorm:"type:varchar(20);not null" json:"attribution_method"`
	ModelBackend        string          `gorm:"type:varchar(50)" json:"model_backend"`
	ModelSeed           int64           `json:"model_seed"`
	TransactionCount    int             `json:"transaction_count"`
	IntegrityHash       string          `gorm:"type:varchar(64);not null" json:"integrity_hash"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
}

// NewAssessmentFromEvaluation builds the record persisted for an evaluation
func NewAssessmentFromEvaluation(eval *Evaluation, traceID, backend string, seed int64) *Assessment {
	return &Assessment{
		TraceID:             traceID,
		Industry:            string(eval.Industry),
		IndustryFactor:      eval.IndustryFactor,
		ProxyNetProfit:      eval.ProxyNetProfit.Round(2),
		UnadjustedNetProfit: eval.UnadjustedNetProfit.Round(2),
		MonthlyIncome:       eval.MonthlyIncomeEstimate.Round(2),
		Features:            FloatMap(eval.Features.Map()),
		Contributions:       FloatMap(eval.Explanation.Contributions),
		BaseValue:           eval.Explanation.BaseValue,
		DefaultProbability:  eval.Explanation.PDefault,
		CreditScore:         eval.CreditScore,
		RiskGrade:           string(eval.RiskGrade),
		RecommendedLoan:     eval.RecommendedLoan.Round(2),
		AttributionMethod:   string(eval.Explanation.Method),
		ModelBackend:        backend,
		ModelSeed:           seed,
		TransactionCount:    eval.TransactionCount,
	}
}

// BeforeCreate hook for Assessment
func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC().Truncate(time.Microsecond)

	if err := a.Validate(); err != nil {
		return err
	}

	hash, err := a.ComputeIntegrityHash()
	if err != nil {
		return err
	}
	a.IntegrityHash = hash

	return nil
}

// Validate validates the assessment fields
func (a *Assessment) Validate() error {
	if a.CreditScore < MinCreditScore || a.CreditScore > MaxCreditScore {
		return ErrInvalidCreditScore
	}

	if !IsValidRiskGrade(a.RiskGrade) {
		return ErrInvalidRiskGrade
	}

	if !IsValidIndustry(a.Industry) {
		return ErrInvalidIndustry
	}

	return nil
}

// ComputeIntegrityHash returns the SHA-256 fingerprint of the decision fields.
// Keys are serialized in sorted order so the hash is stable across stores.
func (a *Assessment) ComputeIntegrityHash() (string, error) {
	payload := map[string]interface{}{
		"assessment_id":           a.ID.String(),
		"credit_score":            a.CreditScore,
		"risk_grade":              a.RiskGrade,
		"recommended_loan_amount": a.RecommendedLoan.String(),
		"created_at":              a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize assessment for hashing: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyIntegrity recomputes the fingerprint and compares it with the stored one
func (a *Assessment) VerifyIntegrity() bool {
	hash, err := a.ComputeIntegrityHash()
	if err != nil {
		return false
	}
	return hash == a.IntegrityHash
}

// TableName returns the table name for Assessment
func (a *Assessment) TableName() string {
	return "assessments"
}

// AssessmentFilters narrows assessment listings
type AssessmentFilters struct {
	RiskGrade string
	Industry  string
	MinScore  *int
	MaxScore  *int
	Offset    int
	Limit     int
}

// GradeCount is one row of the grade distribution
type GradeCount struct {
	RiskGrade    string  `json:"risk_grade"`
	Count        int64   `json:"count"`
	AverageScore float64 `json:"average_score"`
}

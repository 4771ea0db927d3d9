package dto

import (
	"time"

	"creditnext/internal/models"
	"creditnext/internal/scoring"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionInput is one ledger line in a request body
type TransactionInput struct {
	Date        string          `json:"date" validate:"max=64" example:"2025-01-01"`
	Description string          `json:"description" validate:"max=500" example:"ค่าจ้างออกแบบโลโก้"`
	Amount      decimal.Decimal `json:"amount" validate:"non_negative_amount,max_amount" swaggertype:"number" example:"3500"`
	Type        string          `json:"type" validate:"required,transaction_type" example:"Income"`
}

// ToModel converts the input into a ledger transaction
func (t TransactionInput) ToModel() models.Transaction {
	return models.Transaction{
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
	}
}

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	Transactions []TransactionInput `json:"transactions" validate:"dive"`
}

// Ledger returns the request transactions as models
func (r AnalyzeRequest) Ledger() []models.Transaction {
	out := make([]models.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		out[i] = t.ToModel()
	}
	return out
}

// BatchAnalyzeRequest is the body of POST /api/v1/analyze/batch
type BatchAnalyzeRequest struct {
	Ledgers []AnalyzeRequest `json:"ledgers" validate:"dive"`
}

// AnalyzeResponse is an evaluation plus the stored assessment reference
type AnalyzeResponse struct {
	AssessmentID   *uuid.UUID `json:"assessment_id,omitempty"`
	RiskGradeLabel string     `json:"risk_grade_label"`
	models.Evaluation
}

// NewAnalyzeResponse builds the response body for an evaluation
func NewAnalyzeResponse(eval models.Evaluation, assessmentID *uuid.UUID) AnalyzeResponse {
	return AnalyzeResponse{
		AssessmentID:   assessmentID,
		RiskGradeLabel: eval.RiskGrade.Label(),
		Evaluation:     eval,
	}
}

// BatchAnalyzeResponse keeps results in request order
type BatchAnalyzeResponse struct {
	Results []AnalyzeResponse `json:"results"`
	Count   int               `json:"count"`
}

// OCRResponse is the body returned by POST /api/v1/ocr
type OCRResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Source       string               `json:"source"`
	Count        int                  `json:"count"`
}

// RetrainRequest is the optional body of POST /api/v1/model/retrain
type RetrainRequest struct {
	Seed *int64 `json:"seed,omitempty" validate:"omitempty,gte=0"`
}

// ModelInfoResponse describes the active scoring model
type ModelInfoResponse struct {
	Backend         string                    `json:"backend"`
	Seed            int64                     `json:"seed"`
	FeatureOrder    []string                  `json:"feature_order"`
	FeatureScaling  map[string]FeatureScaling `json:"feature_scaling"`
	Explainer       bool                      `json:"explainer"`
	TrainSamples    int                       `json:"train_samples"`
	PositiveRate    float64                   `json:"positive_rate"`
	Holdout         scoring.HoldoutMetrics    `json:"holdout"`
	TrainedAt       time.Time                 `json:"trained_at"`
	TrainDurationMS int64                     `json:"train_duration_ms"`
}

// FeatureScaling is the standardization fitted on the training split for one feature
type FeatureScaling struct {
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

// NewModelInfoResponse summarizes an artifact
func NewModelInfoResponse(a *scoring.Artifact) ModelInfoResponse {
	order := a.FeatureOrder()
	mean, scale := a.Scaler().Mean(), a.Scaler().Scale()
	scaling := make(map[string]FeatureScaling, len(order))
	for i, name := range order {
		scaling[name] = FeatureScaling{Mean: mean[i], Scale: scale[i]}
	}

	return ModelInfoResponse{
		Backend:         a.Backend(),
		Seed:            a.Seed(),
		FeatureOrder:    order[:],
		FeatureScaling:  scaling,
		Explainer:       a.HasExplainer(),
		TrainSamples:    a.TrainSamples(),
		PositiveRate:    a.PositiveRate(),
		Holdout:         a.Holdout(),
		TrainedAt:       a.TrainedAt(),
		TrainDurationMS: a.TrainDuration().Milliseconds(),
	}
}

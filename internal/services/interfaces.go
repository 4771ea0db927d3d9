package services

import (
	"context"
	"time"

	"creditnext/internal/models"
	"creditnext/internal/ocr"
	"creditnext/internal/scoring"

	"github.com/google/uuid"
)

// AssessmentServiceInterface scores ledgers and serves the stored assessment history
type AssessmentServiceInterface interface {
	Evaluate(ctx context.Context, transactions []models.Transaction) (*models.AssessmentResult, error)
	EvaluateBatch(ctx context.Context, ledgers [][]models.Transaction) ([]models.AssessmentResult, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error)
	ListAssessments(ctx context.Context, filters models.AssessmentFilters) ([]models.Assessment, int64, error)
	GradeDistribution(ctx context.Context, industry string) ([]models.GradeCount, error)
}

// ModelServiceInterface exposes the active model and retraining
type ModelServiceInterface interface {
	Info(ctx context.Context) (*scoring.Artifact, error)
	Retrain(ctx context.Context, seed *int64) (*scoring.Artifact, error)
	Ready() bool
}

// ModelStoreInterface is the artifact holder used by the assessment and model services
type ModelStoreInterface interface {
	Get(ctx context.Context) (*scoring.Artifact, error)
	Retrain(ctx context.Context, seed int64) (*scoring.Artifact, error)
	Ready() bool
}

// OCRServiceInterface turns uploaded statements into ledgers
type OCRServiceInterface interface {
	Extract(ctx context.Context, doc ocr.Document, bank string) (*ocr.Extraction, error)
}

// DocumentExtractor is implemented by ocr.Pipeline
type DocumentExtractor interface {
	Extract(ctx context.Context, doc ocr.Document, bank string) (*ocr.Extraction, error)
}

// AuthServiceInterface exchanges operator credentials for a token
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

type TokenServiceInterface interface {
	GenerateOperatorToken(subject string) (string, time.Time, error)
	ValidateOperatorToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogAssessmentCompleted(ctx context.Context, eval *models.Evaluation, assessmentID *uuid.UUID, duration time.Duration)
	LogAssessmentPersistFailed(ctx context.Context, err error)
	LogBatchCompleted(ctx context.Context, ledgers int, duration time.Duration)
	LogOCRExtraction(ctx context.Context, filename string, source ocr.Source, transactions int, duration time.Duration)
	LogOCRFailed(ctx context.Context, filename string, err error)
	LogModelRetrained(ctx context.Context, seed int64, backend string, auc float64, duration time.Duration)
	LogModelRetrainFailed(ctx context.Context, seed int64, err error)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

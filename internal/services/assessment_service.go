package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creditnext/internal/models"
	"creditnext/internal/repositories"
	"creditnext/internal/scoring"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const batchWorkers = 8

var (
	ErrInvalidLedger       = errors.New("invalid ledger")
	ErrTooManyTransactions = errors.New("ledger has too many transactions")
	ErrEmptyBatch          = errors.New("batch contains no ledgers")
	ErrBatchTooLarge       = errors.New("batch contains too many ledgers")
	ErrModelNotReady       = errors.New("scoring model is not ready")
	ErrHistoryDisabled     = errors.New("assessment history is not configured")
	ErrAssessmentNotFound  = repositories.ErrAssessmentNotFound
	ErrStorage             = repositories.ErrStorage
)

// AssessmentLimits bounds the size of scoring requests
type AssessmentLimits struct {
	MaxTransactions int
	MaxBatchLedgers int
}

type AssessmentService struct {
	store   ModelStoreInterface
	repo    repositories.AssessmentRepositoryInterface
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
	limits  AssessmentLimits
}

// NewAssessmentService wires the scorer to the history store. repo may be nil, in which
// case evaluations are not persisted and history reads return ErrHistoryDisabled.
func NewAssessmentService(
	store ModelStoreInterface,
	repo repositories.AssessmentRepositoryInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	limits AssessmentLimits,
) AssessmentServiceInterface {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if audit == nil {
		audit = NewAuditLogger(nil)
	}
	return &AssessmentService{
		store:   store,
		repo:    repo,
		metrics: metrics,
		audit:   audit,
		limits:  limits,
	}
}

func (s *AssessmentService) validate(transactions []models.Transaction) error {
	if s.limits.MaxTransactions > 0 && len(transactions) > s.limits.MaxTransactions {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyTransactions, len(transactions), s.limits.MaxTransactions)
	}
	if i, err := models.ValidateTransactions(transactions); err != nil {
		return fmt.Errorf("%w: transaction %d: %w", ErrInvalidLedger, i, err)
	}
	return nil
}

// Evaluate scores one ledger. An empty ledger is valid and scores as the Unknown industry.
func (s *AssessmentService) Evaluate(ctx context.Context, transactions []models.Transaction) (*models.AssessmentResult, error) {
	if err := s.validate(transactions); err != nil {
		return nil, err
	}
	return s.evaluate(ctx, transactions)
}

func (s *AssessmentService) evaluate(ctx context.Context, transactions []models.Transaction) (*models.AssessmentResult, error) {
	artifact, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelNotReady, err)
	}

	start := time.Now()
	eval := scoring.Evaluate(artifact, transactions)
	duration := time.Since(start)

	s.metrics.RecordProcessingTime("assessment.scoring", duration)
	s.metrics.RecordGauge("assessment.credit_score", float64(eval.CreditScore), nil)
	s.metrics.IncrementCounter("assessment.completed", map[string]string{
		"risk_grade": string(eval.RiskGrade),
		"industry":   string(eval.Industry),
		"method":     string(eval.Explanation.Method),
	})

	result := &models.AssessmentResult{Evaluation: eval}
	if s.repo != nil {
		record := models.NewAssessmentFromEvaluation(&eval, TraceIDFromContext(ctx), artifact.Backend(), artifact.Seed())
		if err := s.repo.Create(ctx, record); err != nil {
			s.metrics.IncrementCounter("assessment.persist_failed", nil)
			s.audit.LogAssessmentPersistFailed(ctx, err)
		} else {
			id := record.ID
			result.AssessmentID = &id
		}
	}

	s.audit.LogAssessmentCompleted(ctx, &eval, result.AssessmentID, duration)
	return result, nil
}

// EvaluateBatch validates every ledger first, then scores them concurrently.
// Results keep the request order; the first failure cancels the rest.
func (s *AssessmentService) EvaluateBatch(ctx context.Context, ledgers [][]models.Transaction) ([]models.AssessmentResult, error) {
	if len(ledgers) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.limits.MaxBatchLedgers > 0 && len(ledgers) > s.limits.MaxBatchLedgers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrBatchTooLarge, len(ledgers), s.limits.MaxBatchLedgers)
	}
	for i, ledger := range ledgers {
		if err := s.validate(ledger); err != nil {
			return nil, fmt.Errorf("ledger %d: %w", i, err)
		}
	}

	start := time.Now()
	results := make([]models.AssessmentResult, len(ledgers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, ledger := range ledgers {
		g.Go(func() error {
			r, err := s.evaluate(gctx, ledger)
			if err != nil {
				return fmt.Errorf("ledger %d: %w", i, err)
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.RecordGauge("assessment.batch_size", float64(len(ledgers)), nil)
	s.audit.LogBatchCompleted(ctx, len(ledgers), time.Since(start))
	return results, nil
}

func (s *AssessmentService) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AssessmentService) ListAssessments(ctx context.Context, filters models.AssessmentFilters) ([]models.Assessment, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrHistoryDisabled
	}
	return s.repo.List(ctx, filters)
}

func (s *AssessmentService) GradeDistribution(ctx context.Context, industry string) ([]models.GradeCount, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.GradeDistribution(ctx, industry)
}

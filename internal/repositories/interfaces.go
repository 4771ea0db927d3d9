package repositories

import (
	"context"
	"errors"

	"creditnext/internal/models"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	// ErrStorage marks failures of the database itself, as opposed to missing rows
	ErrStorage = errors.New("assessment storage unavailable")
)

// AssessmentRepositoryInterface defines the contract for assessment persistence
type AssessmentRepositoryInterface interface {
	Create(ctx context.Context, assessment *models.Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assessment, error)
	List(ctx context.Context, filters models.AssessmentFilters) ([]models.Assessment, int64, error)
	GradeDistribution(ctx context.Context, industry string) ([]models.GradeCount, error)
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"creditnext/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// AssessmentRepository handles database operations for assessments
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) AssessmentRepositoryInterface {
	return &AssessmentRepository{
		db: db,
	}
}

// Create stores an assessment; the ID, timestamp and integrity hash are filled by the model hook
func (r *AssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	if assessment == nil {
		return errors.New("assessment cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(assessment).Error; err != nil {
		return fmt.Errorf("%w: failed to create assessment: %w", ErrStorage, err)
	}

	return nil
}

// GetByID retrieves an assessment by its ID
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("%w: failed to get assessment by ID: %w", ErrStorage, err)
	}

	return &assessment, nil
}

// List returns a page of assessments, newest first, with the total matching count
func (r *AssessmentRepository) List(ctx context.Context, filters models.AssessmentFilters) ([]models.Assessment, int64, error) {
	var assessments []models.Assessment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Assessment{})

	if filters.RiskGrade != "" {
		query = query.Where("risk_grade = ?", filters.RiskGrade)
	}
	if filters.Industry != "" {
		query = query.Where("industry = ?", filters.Industry)
	}
	if filters.MinScore != nil {
		query = query.Where("credit_score >= ?", *filters.MinScore)
	}
	if filters.MaxScore != nil {
		query = query.Where("credit_score <= ?", *filters.MaxScore)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count assessments: %w", ErrStorage, err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&assessments).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: failed to list assessments: %w", ErrStorage, err)
	}

	return assessments, total, nil
}

// gradeDistributionQuery builds the aggregate used by GradeDistribution
func gradeDistributionQuery(industry string) (string, []interface{}, error) {
	builder := sq.Select(
		"risk_grade",
		"COUNT(*) AS count",
		"AVG(credit_score) AS average_score",
	).
		From("assessments").
		GroupBy("risk_grade").
		OrderBy("risk_grade")

	if industry != "" {
		builder = builder.Where(sq.Eq{"industry": industry})
	}

	return builder.ToSql()
}

// GradeDistribution counts assessments per risk grade, optionally for one industry
func (r *AssessmentRepository) GradeDistribution(ctx context.Context, industry string) ([]models.GradeCount, error) {
	query, args, err := gradeDistributionQuery(industry)
	if err != nil {
		return nil, fmt.Errorf("failed to build grade distribution query: %w", err)
	}

	var rows []models.GradeCount
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to aggregate grade distribution: %w", ErrStorage, err)
	}

	return rows, nil
}

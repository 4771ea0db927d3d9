package repositories

import (
	"context"
	"testing"
	"time"

	"creditnext/internal/database"
	"creditnext/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAssessmentRepository(t *testing.T) {
	suite.Run(t, new(AssessmentRepositorySuite))
}

type AssessmentRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *database.DB
	repo AssessmentRepositoryInterface
}

func (s *AssessmentRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAssessmentRepository(s.db.DB)
}

func (s *AssessmentRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

var testFactors = map[models.Industry]float64{
	models.IndustryFreelance: models.FactorFreelance,
	models.IndustryRetail:    models.FactorRetail,
	models.IndustryOther:     models.FactorOther,
}

func newTestAssessment(score int, industry models.Industry, createdAt time.Time) *models.Assessment {
	grade := models.GradeForScore(score)
	return &models.Assessment{
		TraceID:             uuid.NewString(),
		Industry:            string(industry),
		IndustryFactor:      testFactors[industry],
		ProxyNetProfit:      decimal.NewFromInt(3825),
		UnadjustedNetProfit: decimal.NewFromInt(2550),
		MonthlyIncome:       decimal.RequireFromString("11666.67"),
		Features: models.FloatMap{
			"expense_ratio": 0.2135,
			"consistency":   0.0,
		},
		Contributions: models.FloatMap{
			"expense_ratio": -0.12,
			"consistency":   0.4,
		},
		BaseValue:          -0.35,
		DefaultProbability: 0.2,
		CreditScore:        score,
		RiskGrade:          string(grade),
		RecommendedLoan:    models.RecommendedLoanAmount(grade, decimal.RequireFromString("11666.67")),
		AttributionMethod:  string(models.AttributionShapley),
		ModelBackend:       "gradient_boosting",
		ModelSeed:          42,
		TransactionCount:   2,
		CreatedAt:          createdAt,
	}
}

func (s *AssessmentRepositorySuite) TestCreate() {
	a := newTestAssessment(780, models.IndustryFreelance, time.Time{})

	err := s.repo.Create(s.ctx, a)
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, a.ID)
	s.False(a.CreatedAt.IsZero())
	s.Len(a.IntegrityHash, 64)
	s.True(a.VerifyIntegrity())
}

func (s *AssessmentRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AssessmentRepositorySuite) TestCreate_RejectsInvalidScore() {
	a := newTestAssessment(780, models.IndustryFreelance, time.Time{})
	a.CreditScore = 1000

	err := s.repo.Create(s.ctx, a)
	s.ErrorIs(err, models.ErrInvalidCreditScore)
}

func (s *AssessmentRepositorySuite) TestGetByID_RoundTrip() {
	a := newTestAssessment(701, models.IndustryRetail, time.Time{})
	s.Require().NoError(s.repo.Create(s.ctx, a))

	got, err := s.repo.GetByID(s.ctx, a.ID)
	s.Require().NoError(err)

	s.Equal(a.ID, got.ID)
	s.Equal("B", got.RiskGrade)
	s.Equal(701, got.CreditScore)
	s.True(a.RecommendedLoan.Equal(got.RecommendedLoan))
	s.InDelta(0.4, got.Contributions["consistency"], 1e-12)
	s.True(got.VerifyIntegrity(), "hash must survive a database round trip")
}

func (s *AssessmentRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAssessmentNotFound)
}

func (s *AssessmentRepositorySuite) TestGetByID_DetectsTampering() {
	a := newTestAssessment(650, models.IndustryOther, time.Time{})
	s.Require().NoError(s.repo.Create(s.ctx, a))

	s.Require().NoError(s.db.Exec("UPDATE assessments SET credit_score = ? WHERE id = ?", 890, a.ID).Error)

	got, err := s.repo.GetByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.False(got.VerifyIntegrity())
}

func (s *AssessmentRepositorySuite) seed() {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []struct {
		score    int
		industry models.Industry
	}{
		{820, models.IndustryFreelance},
		{790, models.IndustryFreelance},
		{710, models.IndustryRetail},
		{640, models.IndustryRetail},
		{500, models.IndustryOther},
	}
	for i, row := range rows {
		s.Require().NoError(s.repo.Create(s.ctx, newTestAssessment(row.score, row.industry, base.Add(time.Duration(i)*time.Hour))))
	}
}

func (s *AssessmentRepositorySuite) TestList_NewestFirstWithPaging() {
	s.seed()

	page, total, err := s.repo.List(s.ctx, models.AssessmentFilters{Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(page, 2)
	s.Equal(500, page[0].CreditScore)
	s.Equal(640, page[1].CreditScore)

	page, _, err = s.repo.List(s.ctx, models.AssessmentFilters{Offset: 4, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(820, page[0].CreditScore)
}

func (s *AssessmentRepositorySuite) TestList_Filters() {
	s.seed()

	page, total, err := s.repo.List(s.ctx, models.AssessmentFilters{Industry: "Freelance"})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(page, 2)

	page, total, err = s.repo.List(s.ctx, models.AssessmentFilters{RiskGrade: "A"})
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	minScore, maxScore := 600, 750
	page, total, err = s.repo.List(s.ctx, models.AssessmentFilters{MinScore: &minScore, MaxScore: &maxScore})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	for _, a := range page {
		s.GreaterOrEqual(a.CreditScore, minScore)
		s.LessOrEqual(a.CreditScore, maxScore)
	}
}

func (s *AssessmentRepositorySuite) TestList_ClampsLimit() {
	s.seed()

	page, _, err := s.repo.List(s.ctx, models.AssessmentFilters{Limit: 1000, Offset: -3})
	s.Require().NoError(err)
	s.Len(page, 5)
}

func (s *AssessmentRepositorySuite) TestGradeDistribution() {
	s.seed()

	rows, err := s.repo.GradeDistribution(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(rows, 4)

	s.Equal("A", rows[0].RiskGrade)
	s.Equal(int64(2), rows[0].Count)
	s.InDelta(805.0, rows[0].AverageScore, 1e-9)
	s.Equal("D", rows[3].RiskGrade)
	s.Equal(int64(1), rows[3].Count)

	rows, err = s.repo.GradeDistribution(s.ctx, "Retail")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("B", rows[0].RiskGrade)
	s.Equal("C", rows[1].RiskGrade)
}

func (s *AssessmentRepositorySuite) TestGradeDistribution_Empty() {
	rows, err := s.repo.GradeDistribution(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(rows)
}

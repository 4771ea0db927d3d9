package scoring

import (
	"math"
	"testing"
	"time"

	"creditnext/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestCreditScore(t *testing.T) {
	cases := []struct {
		p    float64
		want int
	}{
		{0, 900},
		{1, 300},
		{0.5, 600},
		{0.2, 780},
		{0.0625, 863}, // 862.5 rounds away from zero
		{-0.5, 900},
		{1.5, 300},
		{math.NaN(), 300},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CreditScore(tc.p), "p=%v", tc.p)
	}
}

type ScorerTestSuite struct {
	suite.Suite
	artifact *Artifact
}

func TestScorerTestSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func (s *ScorerTestSuite) SetupSuite() {
	artifact, err := Train(42, smallTrainOptions()...)
	s.Require().NoError(err)
	s.artifact = artifact
}

func (s *ScorerTestSuite) TestScore_BoundsAndShapley() {
	result := Score(s.artifact, exampleFeatures())

	s.GreaterOrEqual(result.CreditScore, models.MinCreditScore)
	s.LessOrEqual(result.CreditScore, models.MaxCreditScore)
	s.GreaterOrEqual(result.DefaultProbability, 0.0)
	s.LessOrEqual(result.DefaultProbability, 1.0)
	s.Equal(CreditScore(result.DefaultProbability), result.CreditScore)
	s.Equal(models.AttributionShapley, result.Method)
	s.Len(result.Contributions, models.NumFeatures)

	// contributions explain the default log-odds
	total := result.BaseValue
	for _, v := range result.Contributions {
		total += v
	}
	s.InDelta(logit(result.DefaultProbability), total, 1e-6)
}

func (s *ScorerTestSuite) TestScore_Idempotent() {
	first := Score(s.artifact, exampleFeatures())
	second := Score(s.artifact, exampleFeatures())

	s.Equal(first, second)
}

func (s *ScorerTestSuite) TestScore_RiskierLedgerScoresLower() {
	good := models.FeatureVector{ExpenseRatio: 0.2, Consistency: 0.9, IndustryFactor: 0.5, ProxyNetProfit: 40000, CashflowStrength: math.Log1p(40000)}
	bad := models.FeatureVector{ExpenseRatio: 0.8, Consistency: 0.1, IndustryFactor: 0.1, ProxyNetProfit: 0, CashflowStrength: 0}

	s.Greater(Score(s.artifact, good).CreditScore, Score(s.artifact, bad).CreditScore)
}

func (s *ScorerTestSuite) TestScore_MonotoneInExpenseRatio() {
	fv := exampleFeatures()
	prev := -1.0
	for _, er := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		fv.ExpenseRatio = er
		p := Score(s.artifact, fv).DefaultProbability
		s.GreaterOrEqual(p, prev-1e-12)
		prev = p
	}
}

func (s *ScorerTestSuite) TestEvaluate_ExampleLedger() {
	txns := []models.Transaction{
		{Date: "2025-01-01", Description: "ค่าจ้างออกแบบโลโก้", Amount: decimal.NewFromInt(3500), Type: models.TransactionTypeIncome},
		{Date: "2025-01-10", Description: "ค่าอุปกรณ์", Amount: decimal.NewFromInt(950), Type: models.TransactionTypeExpense},
	}

	eval := Evaluate(s.artifact, txns)

	s.Equal(models.IndustryFreelance, eval.Industry)
	s.Equal(0.5, eval.IndustryFactor)
	s.True(decimal.NewFromInt(3825).Equal(eval.ProxyNetProfit))
	s.True(decimal.NewFromInt(2550).Equal(eval.UnadjustedNetProfit))
	s.Equal("11666.67", eval.MonthlyIncomeEstimate.StringFixed(2))
	s.Equal(3825.0, eval.Features.ProxyNetProfit)
	s.Equal(2, eval.TransactionCount)
	s.Equal(models.GradeForScore(eval.CreditScore), eval.RiskGrade)
	s.True(models.RecommendedLoanAmount(eval.RiskGrade, eval.MonthlyIncomeEstimate).Equal(eval.RecommendedLoan))
	s.Equal(models.AttributionShapley, eval.Explanation.Method)
}

func (s *ScorerTestSuite) TestEvaluate_EmptyLedger() {
	eval := Evaluate(s.artifact, nil)

	s.Equal(models.IndustryUnknown, eval.Industry)
	s.True(eval.ProxyNetProfit.IsZero())
	s.True(eval.MonthlyIncomeEstimate.IsZero())
	s.True(eval.RecommendedLoan.IsZero())
	s.Equal(0.5, eval.Features.Consistency)
	s.GreaterOrEqual(eval.CreditScore, models.MinCreditScore)
}

func TestScore_HeuristicWhenExplainerMissing(t *testing.T) {
	artifact, err := Train(42, smallTrainOptions(WithoutExplainer())...)
	require.NoError(t, err)
	require.False(t, artifact.HasExplainer())

	fv := exampleFeatures()
	result := Score(artifact, fv)

	assert.Equal(t, models.AttributionHeuristic, result.Method)
	assert.Equal(t, 0.0, result.BaseValue)
	assert.Equal(t, HeuristicContributions(fv), result.Contributions)
}

type failingAttributor struct{}

func (failingAttributor) Attribute(Row) (Attribution, error) {
	return Attribution{}, ErrNonFiniteAttribution
}

func TestScore_HeuristicWhenExplainerFails(t *testing.T) {
	artifact, err := Train(42, smallTrainOptions(WithoutExplainer())...)
	require.NoError(t, err)
	artifact.explainer = failingAttributor{}

	result := Score(artifact, exampleFeatures())

	assert.Equal(t, models.AttributionHeuristic, result.Method)
}

func TestTrain_DeterministicForSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("trains two full-size models")
	}

	clock := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	a, err := Train(42, WithClock(clock))
	require.NoError(t, err)
	b, err := Train(42, WithClock(clock))
	require.NoError(t, err)

	assert.Equal(t, "gradient_boosting", a.Backend())
	assert.Equal(t, 2800, a.TrainSamples())
	assert.Equal(t, 700, a.Holdout().Samples)
	assert.Len(t, a.Background(), DefaultBackgroundSize)
	assert.Equal(t, a.Scaler().Mean(), b.Scaler().Mean())
	assert.Equal(t, a.Holdout(), b.Holdout())
	assert.Equal(t, Score(a, exampleFeatures()), Score(b, exampleFeatures()))
	assert.Greater(t, a.Holdout().AUC, 0.6)
}

func TestTrain_FallsBackToLogistic(t *testing.T) {
	bad := smallBooster()
	bad.Trees = 0

	artifact, err := Train(42, smallTrainOptions(WithBoosterConfig(bad))...)

	require.NoError(t, err)
	assert.Equal(t, "logistic", artifact.Backend())
	assert.True(t, artifact.HasExplainer())
}

func TestTrain_ReportsProgress(t *testing.T) {
	var done int
	_, err := Train(1, smallTrainOptions(WithProgress(func(d, total int) { done = d }))...)

	require.NoError(t, err)
	assert.Equal(t, smallBooster().Trees, done)
}

func TestTrain_EmptyPopulation(t *testing.T) {
	_, err := Train(1, WithSyntheticConfig(SyntheticConfig{}))
	assert.ErrorIs(t, err, ErrEmptyTrainingSet)
}

func TestTrain_UsesInjectedRandomSource(t *testing.T) {
	rng := &sequenceSource{
		uniform: []float64{0.05, 0.35, 0.65, 0.95, 0.5, 0.15, 0.85, 0.25, 0.75, 0.45},
		normal:  []float64{-1, 0.5, 1.5, -0.2},
	}
	cfg := DefaultSyntheticConfig()
	cfg.Samples = 200

	artifact, err := Train(3, smallTrainOptions(WithSyntheticConfig(cfg), WithRandomSource(rng))...)

	require.NoError(t, err)
	assert.Equal(t, 160, artifact.TrainSamples())
}

func TestArtifact_BackgroundIsCopied(t *testing.T) {
	artifact, err := Train(42, smallTrainOptions()...)
	require.NoError(t, err)

	bg := artifact.Background()
	require.Len(t, bg, 64)
	bg[0][0] = 1e9

	assert.NotEqual(t, 1e9, artifact.Background()[0][0])
}

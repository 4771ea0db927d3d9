package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GradientBoostingTestSuite struct {
	suite.Suite
	X []Row
	y []float64
}

func TestGradientBoostingTestSuite(t *testing.T) {
	suite.Run(t, new(GradientBoostingTestSuite))
}

func (s *GradientBoostingTestSuite) SetupTest() {
	data := GenerateDataset(NewRandomSource(42), smallSynthetic())
	scaler, err := FitStandardScaler(data.X)
	s.Require().NoError(err)
	s.X = scaler.TransformAll(data.X)
	s.y = data.Y
}

func (s *GradientBoostingTestSuite) fit(cfg BoosterConfig, seed int64) *GradientBoosting {
	clf, err := GradientBoostingTrainer{Config: cfg, Seed: seed}.Fit(s.X, s.y)
	s.Require().NoError(err)
	model, ok := clf.(*GradientBoosting)
	s.Require().True(ok)
	return model
}

func (s *GradientBoostingTestSuite) TestFit_BeatsBaseRate() {
	model := s.fit(smallBooster(), 42)

	s.Equal(40, model.Trees())
	metrics := EvaluateHoldout(model, s.X, s.y)
	s.Greater(metrics.AUC, 0.65)
	for _, x := range s.X[:50] {
		p := model.PredictProba(x)
		s.GreaterOrEqual(p, 0.0)
		s.LessOrEqual(p, 1.0)
	}
}

func (s *GradientBoostingTestSuite) TestFit_Deterministic() {
	a := s.fit(smallBooster(), 42)
	b := s.fit(smallBooster(), 42)

	for _, x := range s.X[:100] {
		s.Equal(a.Margin(x), b.Margin(x))
	}
}

func (s *GradientBoostingTestSuite) TestFit_MonotoneInEveryConstrainedFeature() {
	model := s.fit(smallBooster(), 42)

	grid := []float64{-3, -2, -1.5, -1, -0.5, -0.25, 0, 0.25, 0.5, 1, 1.5, 2, 3}
	for _, probe := range s.X[:40] {
		for f, direction := range DefaultMonotoneConstraints {
			prev := 0.0
			for k, v := range grid {
				x := probe
				x[f] = v
				m := model.Margin(x)
				if k > 0 {
					if direction > 0 {
						s.GreaterOrEqual(m, prev-1e-12, "feature %d must not decrease risk", f)
					} else {
						s.LessOrEqual(m, prev+1e-12, "feature %d must not increase risk", f)
					}
				}
				prev = m
			}
		}
	}
}

func (s *GradientBoostingTestSuite) TestFit_ProgressReportsEveryRound() {
	var calls []int
	trainer := GradientBoostingTrainer{
		Config:   smallBooster(),
		Seed:     1,
		Progress: func(done, total int) { calls = append(calls, done); s.Equal(40, total) },
	}

	_, err := trainer.Fit(s.X, s.y)
	s.Require().NoError(err)
	s.Len(calls, 40)
	s.Equal(40, calls[len(calls)-1])
}

func (s *GradientBoostingTestSuite) TestFit_SingleClass() {
	y := make([]float64, len(s.y))
	_, err := GradientBoostingTrainer{Config: smallBooster()}.Fit(s.X, y)
	s.ErrorIs(err, ErrSingleClass)
}

func (s *GradientBoostingTestSuite) TestFit_Empty() {
	_, err := GradientBoostingTrainer{Config: smallBooster()}.Fit(nil, nil)
	s.ErrorIs(err, ErrEmptyTrainingSet)
}

func (s *GradientBoostingTestSuite) TestFit_InvalidLabels() {
	y := append([]float64(nil), s.y...)
	y[0] = 0.5
	_, err := GradientBoostingTrainer{Config: smallBooster()}.Fit(s.X, y)
	s.ErrorIs(err, ErrInvalidLabels)
}

func TestBoosterConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultBoosterConfig().Validate())

	cases := map[string]func(*BoosterConfig){
		"no trees":          func(c *BoosterConfig) { c.Trees = 0 },
		"no depth":          func(c *BoosterConfig) { c.MaxDepth = 0 },
		"zero rate":         func(c *BoosterConfig) { c.LearningRate = 0 },
		"subsample above 1": func(c *BoosterConfig) { c.Subsample = 1.5 },
		"zero colsample":    func(c *BoosterConfig) { c.ColSample = 0 },
		"negative lambda":   func(c *BoosterConfig) { c.Lambda = -1 },
		"bad monotone":      func(c *BoosterConfig) { c.Monotone[2] = 2 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultBoosterConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidBoosterConfig)
		})
	}
}

func TestSampleColumns(t *testing.T) {
	cols := sampleColumns(nil, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, cols)
}

func TestRegressionTree_ThresholdSendsEqualRight(t *testing.T) {
	tree := regressionTree{nodes: []treeNode{
		{feature: 0, threshold: 1, left: 1, right: 2},
		{feature: -1, value: -1},
		{feature: -1, value: 1},
	}}

	assert.Equal(t, -1.0, tree.predict(Row{0.5}))
	assert.Equal(t, 1.0, tree.predict(Row{1}))
}

package scoring

import "creditnext/internal/models"

// sequenceSource replays fixed values so generation and splitting can be asserted exactly
type sequenceSource struct {
	uniform []float64
	normal  []float64
	ui, ni  int
}

func (s *sequenceSource) Float64() float64 {
	v := s.uniform[s.ui%len(s.uniform)]
	s.ui++
	return v
}

func (s *sequenceSource) NormFloat64() float64 {
	v := s.normal[s.ni%len(s.normal)]
	s.ni++
	return v
}

// Perm returns the identity permutation
func (s *sequenceSource) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func smallSynthetic() SyntheticConfig {
	cfg := DefaultSyntheticConfig()
	cfg.Samples = 600
	return cfg
}

func smallBooster() BoosterConfig {
	cfg := DefaultBoosterConfig()
	cfg.Trees = 40
	return cfg
}

func smallTrainOptions(extra ...TrainOption) []TrainOption {
	opts := []TrainOption{
		WithSyntheticConfig(smallSynthetic()),
		WithBoosterConfig(smallBooster()),
		WithBackgroundSize(64),
	}
	return append(opts, extra...)
}

func exampleFeatures() models.FeatureVector {
	return models.FeatureVector{
		ExpenseRatio:     0.2135,
		Consistency:      0,
		IndustryFactor:   0.5,
		ProxyNetProfit:   3825,
		CashflowStrength: 8.2495,
	}
}

package scoring

import (
	"math"
	"testing"

	"creditnext/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDataset_Bounds(t *testing.T) {
	data := GenerateDataset(NewRandomSource(42), DefaultSyntheticConfig())

	require.Equal(t, 3500, data.Len())
	require.Len(t, data.Y, 3500)

	for i, row := range data.X {
		assert.GreaterOrEqual(t, row[0], 0.15)
		assert.Less(t, row[0], 0.85)
		assert.GreaterOrEqual(t, row[1], 0.1)
		assert.Less(t, row[1], 0.95)
		assert.Contains(t, []float64{models.FactorOther, models.FactorRetail, models.FactorFreelance}, row[2])
		assert.GreaterOrEqual(t, row[3], 0.0)
		assert.LessOrEqual(t, row[3], 70000.0)
		assert.InDelta(t, math.Log1p(row[3]), row[4], 1e-12)
		assert.Contains(t, []float64{0, 1}, data.Y[i])
	}

	rate := data.PositiveRate()
	assert.Greater(t, rate, 0.05)
	assert.Less(t, rate, 0.95)
}

func TestGenerateDataset_Deterministic(t *testing.T) {
	a := GenerateDataset(NewRandomSource(42), smallSynthetic())
	b := GenerateDataset(NewRandomSource(42), smallSynthetic())
	c := GenerateDataset(NewRandomSource(7), smallSynthetic())

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.X, c.X)
}

func TestGenerateDataset_ColumnOrderAndLabels(t *testing.T) {
	cfg := SyntheticConfig{Samples: 2, ProfitMean: 9000, ProfitStdDev: 6500, ProfitMax: 70000}
	rng := &sequenceSource{
		// expense ratio x2, consistency x2, industry x2, then one label draw per row
		uniform: []float64{0, 1, 0, 1, 0.1, 0.9, 0.999, 0.0},
		normal:  []float64{-10, 10},
	}

	data := GenerateDataset(rng, cfg)

	require.Equal(t, 2, data.Len())
	assert.InDelta(t, 0.15, data.X[0][0], 1e-12)
	assert.InDelta(t, 0.85, data.X[1][0], 1e-12)
	assert.InDelta(t, 0.1, data.X[0][1], 1e-12)
	assert.InDelta(t, 0.95, data.X[1][1], 1e-12)
	assert.Equal(t, models.FactorOther, data.X[0][2])
	assert.Equal(t, models.FactorFreelance, data.X[1][2])
	assert.Equal(t, 0.0, data.X[0][3])
	assert.Equal(t, 70000.0, data.X[1][3])

	// u=0.999 is above any sensible default probability, u=0 is below
	assert.Equal(t, 0.0, data.Y[0])
	assert.Equal(t, 1.0, data.Y[1])
}

func TestGenerateDataset_Empty(t *testing.T) {
	data := GenerateDataset(NewRandomSource(1), SyntheticConfig{})
	assert.Equal(t, 0, data.Len())
	assert.Equal(t, 0.0, data.PositiveRate())
}

func TestLabelLogit_Directions(t *testing.T) {
	base := LabelLogit(0.5, 0.6, 0.2, 12000)
	assert.InDelta(t, 0.0, base, 1e-12)

	assert.Greater(t, LabelLogit(0.7, 0.6, 0.2, 12000), base)
	assert.Less(t, LabelLogit(0.5, 0.8, 0.2, 12000), base)
	assert.Less(t, LabelLogit(0.5, 0.6, 0.5, 12000), base)
	assert.Less(t, LabelLogit(0.5, 0.6, 0.2, 30000), base)
}

func TestSplit_Sizes(t *testing.T) {
	data := GenerateDataset(NewRandomSource(42), DefaultSyntheticConfig())

	train, holdout := data.Split(NewRandomSource(1), 0.2)

	assert.Equal(t, 700, holdout.Len())
	assert.Equal(t, 2800, train.Len())
}

func TestSplit_UsesPermutationOrder(t *testing.T) {
	data := Dataset{
		X: []Row{{1}, {2}, {3}, {4}, {5}},
		Y: []float64{0, 1, 0, 1, 0},
	}

	train, holdout := data.Split(&sequenceSource{uniform: []float64{0}, normal: []float64{0}}, 0.2)

	require.Equal(t, 1, holdout.Len())
	assert.Equal(t, 1.0, holdout.X[0][0])
	assert.Equal(t, []float64{1, 0, 1, 0}, train.Y)
}

func TestSplit_KeepsOneTrainingRow(t *testing.T) {
	data := Dataset{X: []Row{{1}, {2}}, Y: []float64{0, 1}}

	train, holdout := data.Split(NewRandomSource(3), 0.99)

	assert.Equal(t, 1, train.Len())
	assert.Equal(t, 1, holdout.Len())
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitStandardScaler(t *testing.T) {
	rows := []Row{
		{1, 10, 5, 0, 0},
		{3, 20, 5, 0, 0},
		{5, 30, 5, 0, 0},
	}

	s, err := FitStandardScaler(rows)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, s.Mean()[0], 1e-12)
	assert.InDelta(t, 20.0, s.Mean()[1], 1e-12)
	// population standard deviation
	assert.InDelta(t, 1.632993161855452, s.Scale()[0], 1e-12)
	// constant columns keep a unit scale
	assert.Equal(t, 1.0, s.Scale()[2])

	out := s.Transform(Row{3, 20, 5, 0, 0})
	assert.Equal(t, Row{0, 0, 0, 0, 0}, out)

	all := s.TransformAll(rows)
	assert.InDelta(t, -1.224744871391589, all[0][0], 1e-12)
	assert.InDelta(t, 1.224744871391589, all[2][1], 1e-12)
}

func TestFitStandardScaler_Empty(t *testing.T) {
	_, err := FitStandardScaler(nil)
	assert.ErrorIs(t, err, ErrEmptyTrainingSet)
}

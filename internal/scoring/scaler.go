package scoring

import (
	"errors"
	"math"
)

var ErrEmptyTrainingSet = errors.New("training set is empty")

// StandardScaler standardizes each column to zero mean and unit variance
type StandardScaler struct {
	mean  Row
	scale Row
}

// FitStandardScaler learns column means and population standard deviations.
// Constant columns get a scale of 1.
func FitStandardScaler(rows []Row) (*StandardScaler, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	n := float64(len(rows))
	s := &StandardScaler{}

	for _, row := range rows {
		for j, v := range row {
			s.mean[j] += v
		}
	}
	for j := range s.mean {
		s.mean[j] /= n
	}

	var variance Row
	for _, row := range rows {
		for j, v := range row {
			d := v - s.mean[j]
			variance[j] += d * d
		}
	}
	for j := range variance {
		std := math.Sqrt(variance[j] / n)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		s.scale[j] = std
	}

	return s, nil
}

// Transform standardizes one row
func (s *StandardScaler) Transform(row Row) Row {
	var out Row
	for j, v := range row {
		out[j] = (v - s.mean[j]) / s.scale[j]
	}
	return out
}

// TransformAll standardizes a matrix into a new slice
func (s *StandardScaler) TransformAll(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = s.Transform(row)
	}
	return out
}

// Mean returns the fitted column means
func (s *StandardScaler) Mean() Row {
	return s.mean
}

// Scale returns the fitted column standard deviations
func (s *StandardScaler) Scale() Row {
	return s.scale
}

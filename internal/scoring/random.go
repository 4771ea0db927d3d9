package scoring

import "math/rand"

// RandomSource is the randomness consumed by dataset generation and splitting.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type RandomSource interface {
	Float64() float64
	NormFloat64() float64
	Perm(n int) []int
}

// NewRandomSource returns a seeded source
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

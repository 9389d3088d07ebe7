package game

import (
	"math/rand"
	"time"
)

// MathRandSource is a RandomSource backed by math/rand.
type MathRandSource struct {
	rng *rand.Rand
}

var _ RandomSource = &MathRandSource{}

// NewMathRandSource returns a source seeded with seed. A zero seed uses the
// current time so every session plays differently.
func NewMathRandSource(seed int64) *MathRandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MathRandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *MathRandSource) Float64() float64 {
	return s.rng.Float64()
}

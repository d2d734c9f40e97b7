package simulation

import (
	"math/rand"
	"time"
)

// DrawSource supplies one random perturbation per player per trial.
// Draws must be uniformly distributed in [-0.5, 0.5).
type DrawSource interface {
	Draw() float64
}

type randSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a reproducible draw source. Seed 0 seeds from the clock.
func NewSeededSource(seed int64) DrawSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Draw() float64 {
	return s.rng.Float64() - 0.5
}

// ConstantSource always returns the same draw. Zero gives a variance-free run.
type ConstantSource float64

func (c ConstantSource) Draw() float64 {
	return float64(c)
}

// NoVariance is a source that never perturbs scores
const NoVariance = ConstantSource(0)

package random

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Seeded draws from a Uniform(0, 1) distribution over its own PCG source.
// Two sources built from the same seed produce the same stream.
type Seeded struct {
	dist distuv.Uniform
	seed uint64
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewSource(seed),
		},
		seed: seed,
	}
}

// Seed returns the seed the source was built from.
func (s *Seeded) Seed() uint64 {
	return s.seed
}

func (s *Seeded) Float64() float64 {
	return s.dist.Rand()
}

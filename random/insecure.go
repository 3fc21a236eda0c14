package random

import (
	"math/rand"
	"sync"
	"time"
)

var (
	insecureRand   = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // weight init does not need crypto randomness
	insecureRandMu sync.Mutex
)

// Insecure draws from a process-wide clock-seeded generator.
type Insecure struct{}

func NewInsecure() *Insecure {
	return &Insecure{}
}

func (s *Insecure) Float64() float64 {
	insecureRandMu.Lock()
	result := insecureRand.Float64()
	insecureRandMu.Unlock()
	return result
}

package random

// Source draws uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Func adapts a function to Source.
type Func func() float64

// Float64 calls f.
func (f Func) Float64() float64 {
	return f()
}

// Fixed always returns the same value.
type Fixed float64

// Float64 returns v.
func (v Fixed) Float64() float64 {
	return float64(v)
}

// Sequence replays values in order and wraps around.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a source that cycles through values. An empty
// sequence always returns 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

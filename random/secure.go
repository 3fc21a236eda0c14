package random

import (
	"crypto/rand"
	"encoding/binary"
)

var readRandom = rand.Read

// Secure draws from crypto/rand.
type Secure struct{}

func NewSecure() *Secure {
	return &Secure{}
}

// Float64 uses the top 53 bits of a random uint64 so every result is an
// exact multiple of 2^-53 below 1.
func (s *Secure) Float64() float64 {
	var buf [8]byte
	if _, err := readRandom(buf[:]); err != nil {
		// Return 0 on error rather than panic
		return 0
	}
	return float64(binary.LittleEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// Package random provides uniform [0, 1) sources for weight initialization.
//
// Implements:
//   - Insecure: math/rand seeded from the clock, shared and mutex-guarded
//   - Seeded: a reproducible gonum Uniform distribution over a PCG source
//   - Secure: crypto/rand, 53 random bits per draw
//   - Fixed: a constant, for tests that assert sign policies
//
// None of the sources are seeded by the initializer itself; reproducible
// networks require a Seeded source.
package random

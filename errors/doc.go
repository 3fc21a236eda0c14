// Package errors provides structured error types for the ffnet library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a location path (layer, node, weight), the offending
// value and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAddress, errors.KindOutOfBounds).
//		Path("hidden", "node[4]").
//		Value(4).
//		Detail("layer has %d nodes", 4).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseAddress, path, 4, 4)
//	err := errors.InvalidTopology("hidden count must be positive", 0)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

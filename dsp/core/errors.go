package core

import "errors"

// Error taxonomy shared by all packages in this module. Validation failures
// wrap one of these so callers can test with errors.Is.
var (
	// ErrInvalidParameter reports a non-positive duration, frequency or
	// count, an empty sequence, or mismatched lengths.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNumericalDegenerate reports a computation that would be undefined,
	// such as an FFT size of zero or the log2 of a non-positive value.
	ErrNumericalDegenerate = errors.New("numerically degenerate")
)

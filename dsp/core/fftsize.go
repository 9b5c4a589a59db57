package core

import (
	"fmt"
	"math"
	"math/bits"
)

// maxFFTSize bounds transform lengths to keep allocations sane.
const maxFFTSize = 1 << 30

// Log2Ceil returns ceil(log2(n)) for n >= 1.
func Log2Ceil(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("core: log2 of %d: %w", n, ErrNumericalDegenerate)
	}
	if n == 1 {
		return 0, nil
	}

	return bits.Len(uint(n - 1)), nil
}

// FFTSize returns nfft = 2^ceil(log2(n)), the smallest power of two >= n.
func FFTSize(n int) (int, error) {
	m, err := Log2Ceil(n)
	if err != nil {
		return 0, err
	}

	nfft := 1 << m
	if nfft > maxFFTSize {
		return 0, fmt.Errorf("core: fft size %d exceeds %d: %w", nfft, maxFFTSize, ErrNumericalDegenerate)
	}

	return nfft, nil
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Linspace returns n evenly spaced values over [start, stop], including both
// endpoints. For n == 1 it returns [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out
}

// Arange returns n samples of start + k*step, k = 0..n-1.
func Arange(start, step float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

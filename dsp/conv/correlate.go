package conv

import (
	"math"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1 and index k corresponds to lag
// k - (len(b) - 1).
//
// Inputs where both sequences are longer than 64 samples are correlated in
// the frequency domain.
func Correlate(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	if min(len(a), len(b)) <= directThreshold {
		return CorrelateDirect(a, b)
	}

	return CorrelateFFT(a, b)
}

// CorrelateDirect computes cross-correlation as a direct convolution with
// the time-reversed second input.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	return Direct(a, reversed(b))
}

// CorrelateMode computes cross-correlation with the specified output mode.
// ModeSame returns len(a) samples, the first at lag -(len(b)-1) + (len(b)-1)/2.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode)
}

// CorrelateNormalized computes cross-correlation scaled by the product of
// the L2 norms of a and b, so values lie in [-1, 1]. All-zero inputs are
// returned unscaled.
func CorrelateNormalized(a, b []float64) ([]float64, error) {
	result, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	norm := floats.Norm(a, 2) * floats.Norm(b, 2)
	if norm == 0 {
		return result, nil
	}

	floats.Scale(1/norm, result)
	return result, nil
}

// CorrelateFFT computes the full cross-correlation as
// IFFT(FFT(a) * conj(FFT(b))) on a zero-padded power-of-two grid, then
// rotates the circular result into linear lag order.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	n := len(a)
	m := len(b)
	nfft, err := core.FFTSize(n + m - 1)
	if err != nil {
		return nil, err
	}

	A, err := spectrum.TransformReal(a, nfft)
	if err != nil {
		return nil, err
	}
	B, err := spectrum.TransformReal(b, nfft)
	if err != nil {
		return nil, err
	}

	for i := range A {
		A[i] *= complex(real(B[i]), -imag(B[i]))
	}

	circ, err := spectrum.Inverse(A)
	if err != nil {
		return nil, err
	}

	// Non-negative lags sit at the start of the circular result, negative
	// lags wrap around to the end.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(circ[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(circ[nfft-m+1+i])
	}

	return result, nil
}

// FindPeak returns the index and value of the maximum in a correlation
// result, or (-1, 0) for an empty slice. The first maximum wins on ties.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = floats.MaxIdx(corr)
	return index, corr[index]
}

// FindPeakAbs is FindPeak over |corr|.
func FindPeakAbs(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	value = math.Abs(corr[0])
	for i, v := range corr {
		if a := math.Abs(v); a > value {
			index, value = i, a
		}
	}

	return index, value
}

// LagFromIndex converts a full correlation index to a lag.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag to an index in a full correlation result.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

// LagOffset returns the lag of output index 0 of a correlation of a (length
// lenA) against b (length lenB) trimmed to mode. Index k has lag
// k + LagOffset(...).
func LagOffset(mode Mode, lenA, lenB int) int {
	switch mode {
	case ModeSame:
		return (lenB-1)/2 - (lenB - 1)
	case ModeValid:
		if lenA >= lenB {
			return 0
		}
		return lenA - lenB
	default:
		return -(lenB - 1)
	}
}

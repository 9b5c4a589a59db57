package conv

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions. Both wrap core.ErrInvalidParameter.
var (
	ErrEmptyInput  = fmt.Errorf("conv: empty input: %w", core.ErrInvalidParameter)
	ErrEmptyKernel = fmt.Errorf("conv: empty kernel: %w", core.ErrInvalidParameter)
	ErrInvalidMode = fmt.Errorf("conv: invalid mode: %w", core.ErrInvalidParameter)
)

// Mode specifies the output mode for convolution and correlation.
type Mode int

const (
	// ModeFull returns the full result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// directThreshold is the kernel length up to which Convolve sums directly.
const directThreshold = 64

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "full", "same" or "valid" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return ModeFull, nil
	case "same":
		return ModeSame, nil
	case "valid":
		return ModeValid, nil
	default:
		return ModeFull, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution into dst, which must have length
// len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(b)
	if m < 4 {
		for i, av := range a {
			for j, bv := range b {
				dst[i+j] += av * bv
			}
		}
		return
	}

	temp := make([]float64, m)
	for i, av := range a {
		vecmath.ScaleBlock(temp, b, av)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs linear convolution, summing directly for kernels up to
// 64 samples and using the FFT otherwise.
func Convolve(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	if min(len(a), len(b)) <= directThreshold {
		if len(b) > len(a) {
			a, b = b, a
		}
		return Direct(a, b)
	}

	return convolveFFT(a, b)
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode)
}

func convolveFFT(a, b []float64) ([]float64, error) {
	outLen := len(a) + len(b) - 1
	nfft, err := core.FFTSize(outLen)
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
		A[i] *= B[i]
	}

	y, err := spectrum.Inverse(A)
	if err != nil {
		return nil, err
	}

	return core.RealPart(y[:outLen]), nil
}

// trimToMode extracts the requested portion of a full result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) ([]float64, error) {
	switch mode {
	case ModeFull:
		return full, nil
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA], nil
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA], nil
		}
		return full[lenA-1 : lenB], nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
}

func checkInputs(a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	return nil
}

package spectrum

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Transform returns the nfft-point forward DFT of x. x is zero-padded or
// truncated to nfft samples first. nfft must be a power of two.
func Transform(x []complex128, nfft int) ([]complex128, error) {
	if err := checkSize(nfft); err != nil {
		return nil, err
	}

	in := core.ZeroPadComplex(x, nfft)
	if nfft == 1 {
		return in, nil
	}

	plan, err := newPlan(nfft)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return out, nil
}

// TransformReal is Transform for a real input sequence.
func TransformReal(x []float64, nfft int) ([]complex128, error) {
	return Transform(core.ToComplex(x, nfft), nfft)
}

// Inverse returns the len(X)-point inverse DFT of X, scaled by 1/len(X).
func Inverse(X []complex128) ([]complex128, error) {
	nfft := len(X)
	if err := checkSize(nfft); err != nil {
		return nil, err
	}

	if nfft == 1 {
		return []complex128{X[0]}, nil
	}

	plan, err := newPlan(nfft)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, nfft)
	if err := plan.Inverse(out, X); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	return out, nil
}

func checkSize(nfft int) error {
	if !core.IsPowerOf2(nfft) {
		return fmt.Errorf("spectrum: fft size must be a power of two: %d: %w", nfft, core.ErrNumericalDegenerate)
	}
	return nil
}

func newPlan(nfft int) (*algofft.Plan[complex128], error) {
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	return plan, nil
}

// Magnitude returns |X[k]| for each complex bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Scale multiplies x by s in place.
func Scale(x []float64, s float64) {
	vecmath.ScaleBlockInPlace(x, s)
}

// Shift rotates x right by len(x)/2 (fftshift) so the zero-lag (or DC) bin
// moves to the centre index len(x)/2. It returns a new slice.
func Shift(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	h := n / 2
	copy(out, x[n-h:])
	copy(out[h:], x[:n-h])
	return out
}

// CenteredIndex maps an unshifted bin index k to its position after Shift.
func CenteredIndex(k, n int) int {
	return (k + n/2) % n
}

// PeakIndex returns the index of the largest value in x, or -1 if x is empty.
func PeakIndex(x []float64) int {
	if len(x) == 0 {
		return -1
	}
	return floats.MaxIdx(x)
}

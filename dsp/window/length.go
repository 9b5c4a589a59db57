package window

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/core"
)

// LengthMode selects how a window is sized relative to the data it tapers.
type LengthMode int

const (
	// MatchSignalLength sizes the window to the received signal and
	// zero-pads it to the longest operand. The matched filter uses this mode.
	MatchSignalLength LengthMode = iota

	// MatchFFTLength sizes the window to the transform length directly.
	// Pulse compression uses this mode.
	MatchFFTLength
)

// String returns the mode name.
func (m LengthMode) String() string {
	switch m {
	case MatchSignalLength:
		return "signal-length"
	case MatchFFTLength:
		return "fft-length"
	default:
		return fmt.Sprintf("window.LengthMode(%d)", int(m))
	}
}

// ForLength builds a window for a buffer of total length n.
//
// In MatchSignalLength mode the taper spans the first signalLen samples and
// the remainder is zero. In MatchFFTLength mode the taper spans all n samples
// and signalLen is ignored.
func ForLength(t Type, mode LengthMode, signalLen, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("window: buffer length must be > 0: %d: %w", n, core.ErrInvalidParameter)
	}

	switch mode {
	case MatchFFTLength:
		return Make(t, n, opts...)
	case MatchSignalLength:
		if signalLen <= 0 {
			return nil, fmt.Errorf("window: signal length must be > 0: %d: %w", signalLen, core.ErrInvalidParameter)
		}

		w, err := Make(t, signalLen, opts...)
		if err != nil {
			return nil, err
		}

		return Fit(w, n), nil
	default:
		return nil, fmt.Errorf("window: unknown length mode %d: %w", int(mode), core.ErrInvalidParameter)
	}
}

// Fit zero-pads (or truncates) coefficients to length n.
func Fit(coeffs []float64, n int) []float64 {
	return core.ZeroPad(coeffs, n)
}

package matched

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/dsp/spectrum"
	"github.com/cwbudde/algo-radar/dsp/window"
)

// Result is the matched-filter output.
type Result struct {
	// Output holds the delay axis in seconds and the filter magnitude.
	Output core.Series
	// NFFT is the transform length; len(Output.Values) == NFFT.
	NFFT int
	// ZeroLag is the index of zero delay, NFFT/2.
	ZeroLag    int
	SampleRate float64
	Window     window.Type
}

// Peak returns the index, delay and magnitude of the strongest response.
func (r Result) Peak() (index int, delay, magnitude float64) {
	index = spectrum.PeakIndex(r.Output.Values)
	if index < 0 {
		return -1, 0, 0
	}
	return index, r.Output.Axis[index], r.Output.Values[index]
}

// Compute runs the matched filter of replica against received.
//
// Both inputs are tapered, zero-padded to nfft = 2^ceil(log2(len(received)))
// and correlated in the frequency domain. A replica longer than nfft is
// truncated. The output always has nfft samples. Non-finite input samples
// are rejected with core.ErrInvalidParameter; a correlation that overflows
// returns core.ErrNumericalDegenerate.
func Compute(received, replica []float64, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)

	if len(received) == 0 {
		return Result{}, fmt.Errorf("matched: received signal must not be empty: %w", core.ErrInvalidParameter)
	}
	if len(replica) == 0 {
		return Result{}, fmt.Errorf("matched: replica must not be empty: %w", core.ErrInvalidParameter)
	}
	if i := firstNonFinite(received); i >= 0 {
		return Result{}, fmt.Errorf("matched: received[%d] is %v: %w", i, received[i], core.ErrInvalidParameter)
	}
	if i := firstNonFinite(replica); i >= 0 {
		return Result{}, fmt.Errorf("matched: replica[%d] is %v: %w", i, replica[i], core.ErrInvalidParameter)
	}
	if cfg.window == window.TypeKaiser && !(cfg.beta >= 0) {
		return Result{}, fmt.Errorf("matched: kaiser beta must be >= 0: %v: %w", cfg.beta, core.ErrInvalidParameter)
	}

	nfft, err := core.FFTSize(len(received))
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}

	span := max(len(received), len(replica))
	if cfg.lengthMode == window.MatchFFTLength {
		span = nfft
	}

	w, err := window.ForLength(cfg.window, cfg.lengthMode, len(received), span, window.WithBeta(cfg.beta))
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}

	y, err := window.ApplyCoefficients(core.ZeroPad(received, span), w)
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}
	r, err := window.ApplyCoefficients(core.ZeroPad(replica, span), w)
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}

	Y, err := spectrum.TransformReal(y, nfft)
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}
	R, err := spectrum.TransformReal(r, nfft)
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}

	for k := range R {
		R[k] *= complex(real(Y[k]), -imag(Y[k]))
	}

	corr, err := spectrum.Inverse(R)
	if err != nil {
		return Result{}, fmt.Errorf("matched: %w", err)
	}

	mag := spectrum.Magnitude(corr)
	spectrum.Scale(mag, 1/float64(nfft))
	if firstNonFinite(mag) >= 0 {
		return Result{}, fmt.Errorf("matched: correlation overflows: %w", core.ErrNumericalDegenerate)
	}
	mag = spectrum.Shift(mag)

	fs := cfg.proc.SampleRate
	delay := make([]float64, nfft)
	for k := range delay {
		delay[k] = float64(k-nfft/2) / fs
	}

	return Result{
		Output:     core.Series{Axis: delay, Values: mag},
		NFFT:       nfft,
		ZeroLag:    nfft / 2,
		SampleRate: fs,
		Window:     cfg.window,
	}, nil
}

// Replica returns the damped-sinusoid reference sampled on a record of n
// samples centred at t = 0, i.e. starting at -n/(2*fs).
func Replica(f0, tau float64, n int, fs float64) ([]float64, error) {
	if !(fs > 0) || math.IsInf(fs, 1) {
		return nil, fmt.Errorf("matched: sample rate must be > 0: %v: %w", fs, core.ErrInvalidParameter)
	}
	return signal.DampedSine(f0, tau, n, fs, -float64(n)/2/fs)
}

func firstNonFinite(x []float64) int {
	for i, v := range x {
		if !core.IsFinite(v) {
			return i
		}
	}
	return -1
}

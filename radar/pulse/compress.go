package pulse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/dsp/spectrum"
	"github.com/cwbudde/algo-radar/dsp/window"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	noisy    bool
	snrDB    float64
	src      signal.Source
	parallel bool
}

// WithNoise adds complex Gaussian noise at snrDB to the composite return
// before compression. A nil src uses the process-wide random source.
func WithNoise(snrDB float64, src signal.Source) Option {
	return func(o *options) {
		o.noisy = true
		o.snrDB = snrDB
		o.src = src
	}
}

// WithParallel synthesizes scatterer returns concurrently. Output is
// identical to the serial path.
func WithParallel(on bool) Option {
	return func(o *options) {
		o.parallel = on
	}
}

// Result is the outcome of Compute.
type Result struct {
	Geometry

	// Uncompressed is real(y) against relative delay k*DeltaT.
	Uncompressed core.Series
	// Compressed is |FFT(window*y)|/NFFT, fftshifted, against relative
	// delay linspace(-PulseWidth/2, PulseWidth/2-DeltaT, NFFT).
	Compressed core.Series
	// Range maps each compressed bin to absolute range,
	// RMin + (k - NFFT/2)*RangeResolution.
	Range []float64
	// Aliased lists the indices of scatterers at or beyond
	// MaxUnambiguousRange from RMin.
	Aliased []int
}

// Peak returns the compressed bin with the largest magnitude together with
// its relative delay and absolute range.
func (r Result) Peak() (index int, delay, rng float64) {
	index = spectrum.PeakIndex(r.Compressed.Values)
	if index < 0 {
		return -1, 0, 0
	}
	return index, r.Compressed.Axis[index], r.Range[index]
}

// Compute synthesizes the composite scatterer return and compresses it.
func Compute(p Params, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	g, err := p.Geometry()
	if err != nil {
		return Result{}, err
	}

	y, err := signal.ScattererReturn(signal.Params{
		Frequency:      p.CarrierFrequency,
		Bandwidth:      p.Bandwidth,
		PulseWidth:     p.PulseWidth,
		Samples:        g.NFFT,
		ReferenceRange: p.RMin,
		Scatterers:     p.Scatterers,
		Parallel:       o.parallel,
	})
	if err != nil {
		return Result{}, fmt.Errorf("pulse: %w", err)
	}

	if o.noisy {
		y, err = signal.AddComplexNoise(y, o.snrDB, o.src)
		if err != nil {
			return Result{}, fmt.Errorf("pulse: %w", err)
		}
	}

	w, err := window.ForLength(p.Window, window.MatchFFTLength, g.NFFT, g.NFFT, window.WithBeta(p.KaiserBeta))
	if err != nil {
		return Result{}, fmt.Errorf("pulse: %w", err)
	}

	yw, err := window.ApplyComplex(y, w)
	if err != nil {
		return Result{}, fmt.Errorf("pulse: %w", err)
	}

	Y, err := spectrum.Transform(yw, g.NFFT)
	if err != nil {
		return Result{}, fmt.Errorf("pulse: %w", err)
	}

	mag := spectrum.Magnitude(Y)
	spectrum.Scale(mag, 1/float64(g.NFFT))
	mag = spectrum.Shift(mag)

	htau := p.PulseWidth / 2
	rng := make([]float64, g.NFFT)
	for k := range rng {
		rng[k] = p.RMin + float64(k-g.NFFT/2)*g.RangeResolution
	}

	return Result{
		Geometry: g,
		Uncompressed: core.Series{
			Axis:   core.Arange(0, g.DeltaT, g.NFFT),
			Values: core.RealPart(y),
		},
		Compressed: core.Series{
			Axis:   core.Linspace(-htau, htau-g.DeltaT, g.NFFT),
			Values: mag,
		},
		Range:   rng,
		Aliased: aliased(p.Scatterers, p.RMin, g.MaxUnambiguousRange),
	}, nil
}

func aliased(scat []signal.Scatterer, rmin, limit float64) []int {
	var out []int
	for i, s := range scat {
		if math.Abs(s.Range-rmin) >= limit {
			out = append(out, i)
		}
	}
	return out
}

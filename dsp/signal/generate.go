package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/sourcegraph/conc/iter"
)

// Kind selects the waveform model produced by Synthesize.
type Kind int

const (
	// KindDampedSinusoid is x[k] = sin(2*pi*f0*t[k]) * exp(-t[k]/tau).
	KindDampedSinusoid Kind = iota
	// KindScattererReturn is the composite linear-FM return of a scatterer set.
	KindScattererReturn
)

func (k Kind) String() string {
	switch k {
	case KindDampedSinusoid:
		return "damped-sinusoid"
	case KindScattererReturn:
		return "scatterer-return"
	default:
		return fmt.Sprintf("signal.Kind(%d)", int(k))
	}
}

// Scatterer is a point target at Range metres with radar cross-section RCS.
type Scatterer struct {
	Range float64 `json:"range" yaml:"range"`
	RCS   float64 `json:"rcs" yaml:"rcs"`
}

// Params is the physical parameter record for Synthesize. Fields unused by
// the selected Kind are ignored.
type Params struct {
	// Frequency is the tone frequency (damped sinusoid) or the carrier
	// frequency (scatterer return), in Hz.
	Frequency float64
	// Decay is the damped-sinusoid time constant tau, in seconds.
	Decay float64
	// Bandwidth is the linear-FM sweep bandwidth, in Hz.
	Bandwidth float64
	// PulseWidth is the linear-FM pulse duration, in seconds.
	PulseWidth float64
	// Samples is n for the damped sinusoid and nfft for the scatterer return.
	Samples int
	// SampleRate applies to the damped sinusoid; the scatterer return is
	// sampled at Samples/PulseWidth.
	SampleRate float64
	// Start is the time of sample 0, in seconds. A negative start produces
	// a replica centred on t = 0.
	Start float64
	// ReferenceRange is the range that maps to zero relative delay, in metres.
	ReferenceRange float64
	// Scatterers is the target set for the scatterer return.
	Scatterers []Scatterer
	// Parallel synthesizes scatterers concurrently. The composite is summed
	// in scatterer order either way, so results are identical.
	Parallel bool
}

// Waveform is a uniformly sampled sequence. Exactly one of Real and Complex
// is set, depending on the model that produced it.
type Waveform struct {
	Kind       Kind
	Real       []float64
	Complex    []complex128
	SampleRate float64
	Start      float64
}

// Len returns the number of samples.
func (w Waveform) Len() int {
	if w.Complex != nil {
		return len(w.Complex)
	}
	return len(w.Real)
}

// IsComplex reports whether the waveform carries complex samples.
func (w Waveform) IsComplex() bool { return w.Complex != nil }

// Time returns the sample instants Start + k/SampleRate.
func (w Waveform) Time() []float64 {
	if w.SampleRate <= 0 {
		return nil
	}
	return core.Arange(w.Start, 1/w.SampleRate, w.Len())
}

// Synthesize generates a waveform of the given kind.
func Synthesize(kind Kind, p Params) (Waveform, error) {
	switch kind {
	case KindDampedSinusoid:
		x, err := DampedSine(p.Frequency, p.Decay, p.Samples, p.SampleRate, p.Start)
		if err != nil {
			return Waveform{}, err
		}
		return Waveform{Kind: kind, Real: x, SampleRate: p.SampleRate, Start: p.Start}, nil
	case KindScattererReturn:
		y, err := ScattererReturn(p)
		if err != nil {
			return Waveform{}, err
		}
		return Waveform{
			Kind:       kind,
			Complex:    y,
			SampleRate: float64(p.Samples) / p.PulseWidth,
		}, nil
	default:
		return Waveform{}, fmt.Errorf("signal: unknown kind %d: %w", int(kind), core.ErrInvalidParameter)
	}
}

// maxExpArg is the largest x for which math.Exp(x) is finite.
var maxExpArg = math.Log(math.MaxFloat64)

// DampedSine returns x[k] = sin(2*pi*f0*t) * exp(-t/tau) at t = start + k/fs.
func DampedSine(f0, tau float64, n int, fs, start float64) ([]float64, error) {
	if err := positive("frequency", f0); err != nil {
		return nil, err
	}
	if err := positive("decay", tau); err != nil {
		return nil, err
	}
	if err := positive("sample rate", fs); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("signal: samples must be >= 1: %d: %w", n, core.ErrInvalidParameter)
	}
	if !core.IsFinite(start) {
		return nil, fmt.Errorf("signal: start time must be finite: %v: %w", start, core.ErrInvalidParameter)
	}
	// The envelope peaks at the first sample.
	if e := -start / tau; e > maxExpArg {
		return nil, fmt.Errorf("signal: envelope exp(%g) overflows: %w", e, core.ErrNumericalDegenerate)
	}

	out := make([]float64, n)
	w := 2 * math.Pi * f0
	for k := range out {
		t := start + float64(k)/fs
		out[k] = math.Sin(w*t) * math.Exp(-t/tau)
	}

	return out, nil
}

// ScattererReturn sums the linear-FM returns of p.Scatterers over
// t in [0, PulseWidth) sampled at PulseWidth/Samples. Scatterer j at relative
// range d = Range - ReferenceRange contributes
//
//	rcs * exp(i*(4*pi*d*f0/c - 4*pi*B*d^2/(c^2*taup) + 4*pi*B*d*t/(c*taup)))
func ScattererReturn(p Params) ([]complex128, error) {
	if err := validateScatterers(p); err != nil {
		return nil, err
	}

	nfft := p.Samples
	dt := p.PulseWidth / float64(nfft)

	one := func(s Scatterer) []complex128 {
		return scattererSamples(s, p, dt, nfft)
	}

	y := make([]complex128, nfft)
	if p.Parallel && len(p.Scatterers) > 1 {
		parts := iter.Map(p.Scatterers, func(s *Scatterer) []complex128 {
			return one(*s)
		})
		for _, x := range parts {
			accumulate(y, x)
		}
		return y, nil
	}

	for _, s := range p.Scatterers {
		accumulate(y, one(s))
	}

	return y, nil
}

func scattererSamples(s Scatterer, p Params, dt float64, nfft int) []complex128 {
	const c = core.SpeedOfLight

	d := s.Range - p.ReferenceRange
	psi1 := 4*math.Pi*d*p.Frequency/c - 4*math.Pi*p.Bandwidth*d*d/(c*c*p.PulseWidth)
	rate := 4 * math.Pi * p.Bandwidth * d / (c * p.PulseWidth)

	x := make([]complex128, nfft)
	for k := range x {
		sin, cos := math.Sincos(psi1 + rate*float64(k)*dt)
		x[k] = complex(s.RCS*cos, s.RCS*sin)
	}

	return x
}

func accumulate(dst, src []complex128) {
	for i, v := range src {
		dst[i] += v
	}
}

func validateScatterers(p Params) error {
	if len(p.Scatterers) < 1 {
		return fmt.Errorf("signal: at least one scatterer required: %w", core.ErrInvalidParameter)
	}
	if err := positive("pulse width", p.PulseWidth); err != nil {
		return err
	}
	if err := positive("bandwidth", p.Bandwidth); err != nil {
		return err
	}
	if err := positive("carrier frequency", p.Frequency); err != nil {
		return err
	}
	if p.Samples < 1 {
		return fmt.Errorf("signal: fft size must be >= 1: %d: %w", p.Samples, core.ErrInvalidParameter)
	}
	if !core.IsFinite(p.ReferenceRange) {
		return fmt.Errorf("signal: reference range must be finite: %w", core.ErrInvalidParameter)
	}

	for i, s := range p.Scatterers {
		if !core.IsFinite(s.Range) {
			return fmt.Errorf("signal: scatterer %d range must be finite: %w", i, core.ErrInvalidParameter)
		}
		if s.RCS < 0 || !core.IsFinite(s.RCS) {
			return fmt.Errorf("signal: scatterer %d rcs must be >= 0: %v: %w", i, s.RCS, core.ErrInvalidParameter)
		}
	}

	return nil
}

// LinearScatterers places n scatterers evenly over [rmin, rmin+span], each
// with the same cross-section.
func LinearScatterers(rmin, span float64, n int, rcs float64) ([]Scatterer, error) {
	if n < 1 {
		return nil, fmt.Errorf("signal: scatterer count must be >= 1: %d: %w", n, core.ErrInvalidParameter)
	}
	if span < 0 || rcs < 0 {
		return nil, fmt.Errorf("signal: span and rcs must be >= 0: %w", core.ErrInvalidParameter)
	}

	ranges := core.Linspace(rmin, rmin+span, n)
	out := make([]Scatterer, n)
	for i, r := range ranges {
		out[i] = Scatterer{Range: r, RCS: rcs}
	}

	return out, nil
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("signal: %s must be > 0: %v: %w", name, v, core.ErrInvalidParameter)
	}
	return nil
}

package signal

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-radar/dsp/core"
)

func TestDampedSine(t *testing.T) {
	x, err := DampedSine(150, 0.005, 1000, 1000, 0)
	if err != nil {
		t.Fatalf("DampedSine() error = %v", err)
	}
	if len(x) != 1000 {
		t.Fatalf("len = %d, want 1000", len(x))
	}

	for _, k := range []int{0, 1, 7, 42} {
		tk := float64(k) / 1000
		want := math.Sin(2*math.Pi*150*tk) * math.Exp(-tk/0.005)
		if math.Abs(x[k]-want) > 1e-15 {
			t.Fatalf("x[%d] = %v, want %v", k, x[k], want)
		}
	}
}

func TestDampedSineCentredReplica(t *testing.T) {
	n := 10
	fs := 1000.0
	x, err := DampedSine(100, 0.05, n, fs, -float64(n/2)/fs)
	if err != nil {
		t.Fatal(err)
	}

	// Sample n/2 sits at t = 0.
	if x[n/2] != 0 {
		t.Fatalf("x[n/2] = %v, want 0", x[n/2])
	}
	// Negative times grow instead of decaying.
	if math.Abs(x[1]) <= math.Abs(x[n-1]) {
		t.Fatalf("expected |x[1]| > |x[n-1]|: %v <= %v", math.Abs(x[1]), math.Abs(x[n-1]))
	}
}

func TestSynthesizeDispatch(t *testing.T) {
	w, err := Synthesize(KindDampedSinusoid, Params{
		Frequency: 50, Decay: 0.01, Samples: 64, SampleRate: 800, Start: -0.04,
	})
	if err != nil {
		t.Fatal(err)
	}
	if w.IsComplex() || w.Len() != 64 {
		t.Fatalf("unexpected waveform: complex=%v len=%d", w.IsComplex(), w.Len())
	}
	tm := w.Time()
	if tm[0] != -0.04 || math.Abs(tm[1]-(-0.04+1.0/800)) > 1e-15 {
		t.Fatalf("time axis = %v...", tm[:2])
	}

	c, err := Synthesize(KindScattererReturn, Params{
		Frequency: 5.6e9, Bandwidth: 1e9, PulseWidth: 0.01, Samples: 512,
		ReferenceRange: 150000, Scatterers: []Scatterer{{Range: 150000, RCS: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsComplex() || c.Len() != 512 {
		t.Fatalf("unexpected waveform: complex=%v len=%d", c.IsComplex(), c.Len())
	}
	if !core.NearlyEqual(c.SampleRate, 51200, 1e-12) {
		t.Fatalf("sample rate = %v, want 51200", c.SampleRate)
	}

	if _, err := Synthesize(Kind(7), Params{}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("unknown kind error = %v", err)
	}
}

func TestScattererReturnAtReferenceIsConstant(t *testing.T) {
	y, err := ScattererReturn(Params{
		Frequency: 5.6e9, Bandwidth: 1e9, PulseWidth: 0.01, Samples: 64,
		ReferenceRange: 1000, Scatterers: []Scatterer{{Range: 1000, RCS: 2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	for k, v := range y {
		if cmplx.Abs(v-2) > 1e-12 {
			t.Fatalf("y[%d] = %v, want 2", k, v)
		}
	}
}

func TestScattererReturnPhaseModel(t *testing.T) {
	const c = core.SpeedOfLight
	p := Params{
		Frequency: 1e9, Bandwidth: 1e6, PulseWidth: 1e-3, Samples: 32,
		Scatterers: []Scatterer{{Range: 75, RCS: 0.5}},
	}
	y, err := ScattererReturn(p)
	if err != nil {
		t.Fatal(err)
	}

	r := 75.0
	psi1 := 4*math.Pi*r*p.Frequency/c - 4*math.Pi*p.Bandwidth*r*r/(c*c*p.PulseWidth)
	for _, k := range []int{0, 5, 31} {
		tk := float64(k) * p.PulseWidth / 32
		psi2 := 4 * math.Pi * p.Bandwidth * r / (c * p.PulseWidth) * tk
		want := complex(0.5, 0) * cmplx.Exp(complex(0, psi1+psi2))
		if cmplx.Abs(y[k]-want) > 1e-9 {
			t.Fatalf("y[%d] = %v, want %v", k, y[k], want)
		}
	}
}

func TestScattererReturnParallelMatchesSerial(t *testing.T) {
	scat, err := LinearScatterers(150000, 20, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	p := Params{
		Frequency: 5.6e9, Bandwidth: 1e9, PulseWidth: 0.01, Samples: 512,
		ReferenceRange: 150000, Scatterers: scat,
	}

	serial, err := ScattererReturn(p)
	if err != nil {
		t.Fatal(err)
	}
	p.Parallel = true
	parallel, err := ScattererReturn(p)
	if err != nil {
		t.Fatal(err)
	}

	for i := range serial {
		if cmplx.Abs(serial[i]-parallel[i]) > 1e-9 {
			t.Fatalf("sample %d: serial %v != parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestScattererReturnValidation(t *testing.T) {
	base := Params{
		Frequency: 5.6e9, Bandwidth: 1e9, PulseWidth: 0.01, Samples: 512,
		Scatterers: []Scatterer{{Range: 10, RCS: 1}},
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"no scatterers", func(p *Params) { p.Scatterers = nil }},
		{"zero pulse width", func(p *Params) { p.PulseWidth = 0 }},
		{"negative bandwidth", func(p *Params) { p.Bandwidth = -1 }},
		{"zero carrier", func(p *Params) { p.Frequency = 0 }},
		{"zero samples", func(p *Params) { p.Samples = 0 }},
		{"negative rcs", func(p *Params) { p.Scatterers = []Scatterer{{Range: 1, RCS: -1}} }},
		{"nan range", func(p *Params) { p.Scatterers = []Scatterer{{Range: math.NaN(), RCS: 1}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			if _, err := ScattererReturn(p); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestDampedSineValidation(t *testing.T) {
	tests := []struct {
		name           string
		f0, tau, fs, s float64
		n              int
	}{
		{"zero frequency", 0, 0.005, 1000, 0, 10},
		{"negative decay", 100, -1, 1000, 0, 10},
		{"zero rate", 100, 0.005, 0, 0, 10},
		{"no samples", 100, 0.005, 1000, 0, 0},
		{"nan start", 100, 0.005, 1000, math.NaN(), 10},
		{"inf frequency", math.Inf(1), 0.005, 1000, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DampedSine(tt.f0, tt.tau, tt.n, tt.fs, tt.s)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestLinearScatterers(t *testing.T) {
	s, err := LinearScatterers(150000, 1000, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{150000, 150500, 151000}
	for i, sc := range s {
		if sc.Range != want[i] || sc.RCS != 1 {
			t.Fatalf("scatterer %d = %+v, want range %v rcs 1", i, sc, want[i])
		}
	}

	if _, err := LinearScatterers(0, 10, 0, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("nscat=0 error = %v", err)
	}
}

func TestDampedSineEnvelopeOverflow(t *testing.T) {
	// exp(1/0.001) = exp(1000) is not representable.
	_, err := DampedSine(100, 0.001, 10, 1000, -1)
	if !errors.Is(err, core.ErrNumericalDegenerate) {
		t.Fatalf("error = %v, want ErrNumericalDegenerate", err)
	}

	// exp(500) still is.
	x, err := DampedSine(100, 0.001, 10, 1000, -0.5)
	if err != nil {
		t.Fatalf("start -0.5: %v", err)
	}
	for i, v := range x {
		if !core.IsFinite(v) {
			t.Fatalf("x[%d] = %v", i, v)
		}
	}
}

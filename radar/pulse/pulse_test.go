package pulse

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/dsp/window"
	"github.com/cwbudde/algo-radar/internal/testutil"
)

func TestDefaultGeometry(t *testing.T) {
	g, err := DefaultParams().Geometry()
	if err != nil {
		t.Fatal(err)
	}

	if g.N != 400 || g.NFFT != 512 {
		t.Fatalf("n=%d nfft=%d, want 400/512", g.N, g.NFFT)
	}
	if !core.NearlyEqual(g.RangeResolution, 0.15, 1e-12) {
		t.Fatalf("range resolution = %v", g.RangeResolution)
	}
	if !core.NearlyEqual(g.MaxUnambiguousRange, 38.4, 1e-9) {
		t.Fatalf("max unambiguous range = %v", g.MaxUnambiguousRange)
	}
	if !core.NearlyEqual(g.DeltaT, 0.01/512, 1e-18) {
		t.Fatalf("dt = %v", g.DeltaT)
	}
}

func TestScattererAtMinimumRangeHasZeroDelay(t *testing.T) {
	combos := []struct {
		taup, b, rmin, rrec, f0 float64
	}{
		{0.01, 1e9, 150e3, 30, 5.6e9},
		{0.05, 1e8, 50e3, 60, 3e9},
		{0.001, 5e9, 500e3, 10, 1e10},
		{0.1, 1e10, 10e3, 100, 1e9},
	}

	for _, c := range combos {
		for _, wt := range []window.Type{window.TypeRectangular, window.TypeHamming, window.TypeKaiser} {
			p := Params{
				Scatterers:       []signal.Scatterer{{Range: c.rmin, RCS: 1}},
				PulseWidth:       c.taup,
				Bandwidth:        c.b,
				RMin:             c.rmin,
				RRec:             c.rrec,
				CarrierFrequency: c.f0,
				Window:           wt,
				KaiserBeta:       window.DefaultKaiserBeta,
			}

			res, err := Compute(p)
			if err != nil {
				t.Fatalf("%+v %v: Compute() error = %v", c, wt, err)
			}

			idx, delay, rng := res.Peak()
			if idx != res.NFFT/2 {
				t.Fatalf("%+v %v: peak at %d, want %d", c, wt, idx, res.NFFT/2)
			}
			if math.Abs(delay) > res.DeltaT {
				t.Fatalf("%+v %v: peak delay %v exceeds dt %v", c, wt, delay, res.DeltaT)
			}
			if rng != c.rmin {
				t.Fatalf("%+v %v: peak range %v, want %v", c, wt, rng, c.rmin)
			}
		}
	}
}

func TestOffsetScattererLandsOnRangeBin(t *testing.T) {
	p := DefaultParams()
	for _, bins := range []int{10, -20, 100} {
		p.Scatterers = []signal.Scatterer{{Range: p.RMin + float64(bins)*0.15, RCS: 2}}

		res, err := Compute(p)
		if err != nil {
			t.Fatal(err)
		}

		idx, _, rng := res.Peak()
		if idx != res.NFFT/2+bins {
			t.Fatalf("bins=%d: peak at %d, want %d", bins, idx, res.NFFT/2+bins)
		}
		if math.Abs(rng-p.Scatterers[0].Range) > 1e-6 {
			t.Fatalf("bins=%d: peak range %v, want %v", bins, rng, p.Scatterers[0].Range)
		}
	}
}

func TestSeriesShapes(t *testing.T) {
	p := DefaultParams()
	res, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}

	for name, s := range map[string]core.Series{"uncompressed": res.Uncompressed, "compressed": res.Compressed} {
		if s.Len() != res.NFFT || len(s.Axis) != res.NFFT {
			t.Fatalf("%s: len %d/%d, want %d", name, s.Len(), len(s.Axis), res.NFFT)
		}
		testutil.RequireFinite(t, s.Values)
	}
	if len(res.Range) != res.NFFT {
		t.Fatalf("range axis len %d", len(res.Range))
	}

	if res.Uncompressed.Axis[0] != 0 || res.Uncompressed.Axis[res.NFFT-1] >= p.PulseWidth {
		t.Fatalf("uncompressed axis spans [%v, %v]", res.Uncompressed.Axis[0], res.Uncompressed.Axis[res.NFFT-1])
	}

	htau := p.PulseWidth / 2
	if res.Compressed.Axis[0] != -htau {
		t.Fatalf("compressed axis starts at %v, want %v", res.Compressed.Axis[0], -htau)
	}
	if !core.NearlyEqual(res.Compressed.Axis[res.NFFT-1], htau-res.DeltaT, 1e-15) {
		t.Fatalf("compressed axis ends at %v", res.Compressed.Axis[res.NFFT-1])
	}

	// Uncompressed is the real part of three unit phasors.
	for _, v := range res.Uncompressed.Values {
		if math.Abs(v) > 3+1e-9 {
			t.Fatalf("uncompressed sample %v exceeds scatterer sum", v)
		}
	}
}

func TestAliasedScatterers(t *testing.T) {
	res, err := Compute(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Aliased) != 2 || res.Aliased[0] != 1 || res.Aliased[1] != 2 {
		t.Fatalf("aliased = %v, want [1 2]", res.Aliased)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	p := DefaultParams()
	p.Scatterers, _ = signal.LinearScatterers(p.RMin, 30, 8, 1)

	serial, err := Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Compute(p, WithParallel(true))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, parallel.Compressed.Values, serial.Compressed.Values, 1e-9)
	testutil.RequireSliceNearlyEqual(t, parallel.Uncompressed.Values, serial.Uncompressed.Values, 1e-9)
}

func TestNoisyCompression(t *testing.T) {
	p := DefaultParams()
	p.Scatterers = []signal.Scatterer{
		{Range: p.RMin, RCS: 1},
		{Range: p.RMin + 10*0.15, RCS: 1},
	}

	res, err := Compute(p, WithNoise(20, signal.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}

	idx, _, _ := res.Peak()
	if idx != 256 && idx != 266 {
		t.Fatalf("peak at %d, want 256 or 266", idx)
	}
	if res.Compressed.Values[256] < 0.4 || res.Compressed.Values[266] < 0.4 {
		t.Fatalf("scatterer bins too weak: %v, %v", res.Compressed.Values[256], res.Compressed.Values[266])
	}
}

func TestComputeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"no scatterers", func(p *Params) { p.Scatterers = nil }},
		{"zero pulse width", func(p *Params) { p.PulseWidth = 0 }},
		{"negative pulse width", func(p *Params) { p.PulseWidth = -0.01 }},
		{"zero bandwidth", func(p *Params) { p.Bandwidth = 0 }},
		{"negative bandwidth", func(p *Params) { p.Bandwidth = -1e9 }},
		{"empty receive window", func(p *Params) { p.RRec = 1; p.Bandwidth = 1e6 }},
		{"zero carrier", func(p *Params) { p.CarrierFrequency = 0 }},
		{"nan rmin", func(p *Params) { p.RMin = math.NaN() }},
		{"negative rcs", func(p *Params) { p.Scatterers[0].RCS = -1 }},
		{"negative beta", func(p *Params) { p.Window = window.TypeKaiser; p.KaiserBeta = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			_, err := Compute(p)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

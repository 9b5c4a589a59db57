package pulse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/dsp/window"
)

// Params describes a pulse-compression run.
type Params struct {
	Scatterers       []signal.Scatterer
	PulseWidth       float64 // s
	Bandwidth        float64 // Hz
	RMin             float64 // m, maps to zero relative delay
	RRec             float64 // m, receive window extent
	CarrierFrequency float64 // Hz
	Window           window.Type
	KaiserBeta       float64
}

// DefaultScatterSpan is the extent over which DefaultParams spreads its
// scatterers.
const DefaultScatterSpan = 1000.0

// DefaultParams returns a 10 ms, 1 GHz pulse at 5.6 GHz with three unit
// scatterers spread over 1 km from rmin = 150 km and a 30 m receive window.
func DefaultParams() Params {
	scat, _ := signal.LinearScatterers(150e3, DefaultScatterSpan, 3, 1)
	return Params{
		Scatterers:       scat,
		PulseWidth:       0.01,
		Bandwidth:        1e9,
		RMin:             150e3,
		RRec:             30,
		CarrierFrequency: 5.6e9,
		Window:           window.TypeHamming,
		KaiserBeta:       window.DefaultKaiserBeta,
	}
}

// Geometry holds the sampling quantities derived from Params.
type Geometry struct {
	N                   int     // samples covering the receive window
	NFFT                int     // transform length
	DeltaT              float64 // s, sample spacing PulseWidth/NFFT
	RangeResolution     float64 // m, c/(2B)
	MaxUnambiguousRange float64 // m, RangeResolution*NFFT/2
}

// Validate reports the first invalid field.
func (p Params) Validate() error {
	if len(p.Scatterers) < 1 {
		return fmt.Errorf("pulse: at least one scatterer required: %w", core.ErrInvalidParameter)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"pulse width", p.PulseWidth},
		{"bandwidth", p.Bandwidth},
		{"receive range", p.RRec},
		{"carrier frequency", p.CarrierFrequency},
	} {
		if !(f.v > 0) || math.IsInf(f.v, 1) {
			return fmt.Errorf("pulse: %s must be > 0: %v: %w", f.name, f.v, core.ErrInvalidParameter)
		}
	}

	if !core.IsFinite(p.RMin) {
		return fmt.Errorf("pulse: minimum range must be finite: %v: %w", p.RMin, core.ErrInvalidParameter)
	}
	if p.Window == window.TypeKaiser && !(p.KaiserBeta >= 0) {
		return fmt.Errorf("pulse: kaiser beta must be >= 0: %v: %w", p.KaiserBeta, core.ErrInvalidParameter)
	}

	return nil
}

// Geometry derives the sample count, transform size and range bookkeeping.
func (p Params) Geometry() (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}

	trec := 2 * p.RRec / core.SpeedOfLight
	nf := math.Floor(2 * trec * p.Bandwidth)
	if nf < 1 {
		return Geometry{}, fmt.Errorf("pulse: receive window %v m holds no samples at %v Hz: %w",
			p.RRec, p.Bandwidth, core.ErrInvalidParameter)
	}
	if nf > math.MaxInt32 {
		return Geometry{}, fmt.Errorf("pulse: sample count %v too large: %w", nf, core.ErrNumericalDegenerate)
	}

	n := int(nf)
	nfft, err := core.FFTSize(n)
	if err != nil {
		return Geometry{}, fmt.Errorf("pulse: %w", err)
	}

	deltar := core.RangeResolution(p.Bandwidth)
	return Geometry{
		N:                   n,
		NFFT:                nfft,
		DeltaT:              p.PulseWidth / float64(nfft),
		RangeResolution:     deltar,
		MaxUnambiguousRange: deltar * float64(nfft) / 2,
	}, nil
}

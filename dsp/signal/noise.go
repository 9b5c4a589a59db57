package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-radar/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Source draws zero-mean, unit-variance Gaussian samples. *rand.Rand
// satisfies it.
type Source interface {
	NormFloat64() float64
}

// NewSource returns a deterministic Gaussian source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type globalSource struct{}

func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// NoisePower returns variance(x) / 10^(snrDB/10), using the population
// variance of x.
func NoisePower(x []float64, snrDB float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("signal: noise reference must not be empty: %w", core.ErrInvalidParameter)
	}
	if math.IsNaN(snrDB) || math.IsInf(snrDB, -1) {
		return 0, fmt.Errorf("signal: snr must be a number or +Inf: %v: %w", snrDB, core.ErrInvalidParameter)
	}

	p := stat.PopVariance(x, nil) / core.DBPowerToLinear(snrDB)
	if !core.IsFinite(p) {
		return 0, fmt.Errorf("signal: noise power overflows: %w", core.ErrNumericalDegenerate)
	}
	return p, nil
}

// AddNoise returns signal plus white Gaussian noise scaled to the requested
// SNR in dB. An SNR of +Inf returns an unmodified copy. A nil src draws from
// the process-wide random source and is therefore not reproducible.
func AddNoise(signal []float64, snrDB float64, src Source) ([]float64, error) {
	power, err := NoisePower(signal, snrDB)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = globalSource{}
	}

	out := make([]float64, len(signal))
	copy(out, signal)
	if power == 0 {
		return out, nil
	}

	noise := make([]float64, len(signal))
	for i := range noise {
		noise[i] = src.NormFloat64()
	}
	floats.AddScaled(out, math.Sqrt(power), noise)

	return out, nil
}

// AddComplexNoise adds circular complex Gaussian noise to a complex signal.
// The signal variance is the sum of the in-phase and quadrature variances,
// and the noise power is split evenly between the two components.
func AddComplexNoise(signal []complex128, snrDB float64, src Source) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("signal: noise reference must not be empty: %w", core.ErrInvalidParameter)
	}

	re := core.RealPart(signal)
	im := core.ImagPart(signal)

	pre, err := NoisePower(re, snrDB)
	if err != nil {
		return nil, err
	}
	pim, err := NoisePower(im, snrDB)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = globalSource{}
	}

	out := make([]complex128, len(signal))
	copy(out, signal)
	power := pre + pim
	if power == 0 {
		return out, nil
	}

	sigma := math.Sqrt(power / 2)
	for i := range out {
		out[i] += complex(sigma*src.NormFloat64(), sigma*src.NormFloat64())
	}

	return out, nil
}

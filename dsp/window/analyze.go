package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the response half a bin off-centre, relative to DC.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given coefficients by direct
// DTFT evaluation. An all-zero or empty window yields the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dc := dtftPower(coeffs, 0)
	if dc == 0 {
		return Analysis{}
	}

	enbw, _ := EquivalentNoiseBandwidth(coeffs)
	nf := float64(n)

	sum := vecmath.Sum(coeffs)

	// Half-power point by bisection on [0, Nyquist].
	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if dtftPower(coeffs, mid)/dc > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Analysis{
		CoherentGain:      sum / nf,
		ENBW:              enbw,
		Bandwidth3dB:      2 * lo * nf,
		HighestSidelobedB: highestSidelobe(coeffs, dc),
		ScallopLossdB:     10 * math.Log10(dtftPower(coeffs, 0.5/nf)/dc),
	}
}

// EquivalentNoiseBandwidth returns N * sum(w^2) / sum(w)^2, in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

func dtftPower(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}
	return re*re + im*im
}

// highestSidelobe walks past the first local minimum of the response and
// returns the largest level beyond it, in dB relative to DC. Windows without
// a sidelobe inside Nyquist report -Inf.
func highestSidelobe(coeffs []float64, dc float64) float64 {
	nf := float64(len(coeffs))
	step := 1.0 / (nf * 8)

	prev := dc
	freq := step
	for ; freq < 0.5; freq += step {
		v := dtftPower(coeffs, freq)
		if v > prev {
			break
		}
		prev = v
	}

	peak := 0.0
	for ; freq < 0.5; freq += step {
		if v := dtftPower(coeffs, freq); v > peak {
			peak = v
		}
	}

	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dc)
}

package response

import "math"

// Stats holds mainlobe and sidelobe measurements of a magnitude response.
//
//nolint:revive
type Stats struct {
	Length  int
	Peak    float64
	PeakPos int
	Peak_dB float64

	// MainlobeStart and MainlobeEnd bound the mainlobe, inclusive: the
	// samples reached from PeakPos while the magnitude keeps falling.
	MainlobeStart int
	MainlobeEnd   int
	// Width3dB is the interpolated width, in samples, over which the
	// magnitude stays at or above Peak/sqrt(2).
	Width3dB float64

	// PSLR_dB is the highest sidelobe relative to the peak, 20*log10.
	// -Inf when there is no sidelobe energy.
	PSLR_dB float64
	// ISLR_dB is sidelobe energy relative to mainlobe energy, 10*log10.
	ISLR_dB float64

	RMS            float64
	Energy         float64
	CrestFactor    float64 // peak / RMS
	CrestFactor_dB float64
}

func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func powerTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(value)
}

func emptyStats() Stats {
	return Stats{
		PeakPos:        -1,
		MainlobeStart:  -1,
		MainlobeEnd:    -1,
		Peak_dB:        math.Inf(-1),
		PSLR_dB:        math.Inf(-1),
		ISLR_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate measures a magnitude response. Negative samples are taken by
// absolute value. The first maximum wins on ties.
func Calculate(mag []float64) Stats {
	n := len(mag)
	if n == 0 {
		return emptyStats()
	}

	var (
		peak    = math.Abs(mag[0])
		peakPos int
		sumSq   float64
	)
	for i, x := range mag {
		a := math.Abs(x)
		sumSq += a * a
		if a > peak {
			peak = a
			peakPos = i
		}
	}

	start, end := Mainlobe(mag, peakPos)

	var mainSq, sideSq, side float64
	for i, x := range mag {
		a := math.Abs(x)
		if i >= start && i <= end {
			mainSq += a * a
			continue
		}
		sideSq += a * a
		if a > side {
			side = a
		}
	}

	s := Stats{
		Length:         n,
		Peak:           peak,
		PeakPos:        peakPos,
		Peak_dB:        ampTodB(peak),
		MainlobeStart:  start,
		MainlobeEnd:    end,
		Width3dB:       halfPowerWidth(mag, peakPos, peak),
		PSLR_dB:        math.Inf(-1),
		ISLR_dB:        math.Inf(-1),
		RMS:            math.Sqrt(sumSq / float64(n)),
		Energy:         sumSq,
		CrestFactor_dB: math.Inf(-1),
	}

	if peak > 0 {
		s.PSLR_dB = ampTodB(side / peak)
	}
	if mainSq > 0 {
		s.ISLR_dB = powerTodB(sideSq / mainSq)
	}
	if s.RMS > 0 {
		s.CrestFactor = peak / s.RMS
		s.CrestFactor_dB = ampTodB(s.CrestFactor)
	}

	return s
}

// Mainlobe returns the inclusive index range around pos over which |mag|
// falls strictly on both sides. An out-of-range pos returns (-1, -1).
func Mainlobe(mag []float64, pos int) (start, end int) {
	if pos < 0 || pos >= len(mag) {
		return -1, -1
	}

	start = pos
	for start > 0 && math.Abs(mag[start-1]) < math.Abs(mag[start]) {
		start--
	}

	end = pos
	for end < len(mag)-1 && math.Abs(mag[end+1]) < math.Abs(mag[end]) {
		end++
	}

	return start, end
}

// halfPowerWidth interpolates linearly between the samples that straddle
// peak/sqrt(2) on each side. Edges that never drop below the threshold
// stop at the first or last sample.
func halfPowerWidth(mag []float64, pos int, peak float64) float64 {
	if peak == 0 {
		return 0
	}
	thr := peak / math.Sqrt2

	left := float64(0)
	for i := pos; i > 0; i-- {
		lo, hi := math.Abs(mag[i-1]), math.Abs(mag[i])
		if lo < thr {
			left = float64(i-1) + (thr-lo)/(hi-lo)
			break
		}
	}

	right := float64(len(mag) - 1)
	for i := pos; i < len(mag)-1; i++ {
		hi, lo := math.Abs(mag[i]), math.Abs(mag[i+1])
		if lo < thr {
			right = float64(i) + (hi-thr)/(hi-lo)
			break
		}
	}

	return right - left
}

package core

import "math"

// SpeedOfLight is the propagation speed used for range/delay conversion, in m/s.
const SpeedOfLight = 3e8

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, absolute or relative.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBPowerToLinear converts dB to a linear power ratio (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts a linear power ratio to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// RangeToDelay returns the two-way propagation delay for a range in metres.
func RangeToDelay(r float64) float64 {
	return 2 * r / SpeedOfLight
}

// DelayToRange returns the range in metres for a two-way delay in seconds.
func DelayToRange(t float64) float64 {
	return t * SpeedOfLight / 2
}

// RangeResolution returns c/(2B) for a bandwidth in Hz.
func RangeResolution(bandwidth float64) float64 {
	return SpeedOfLight / 2 / bandwidth
}

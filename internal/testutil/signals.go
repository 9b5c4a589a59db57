package testutil

import (
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Delayed returns x shifted right by delay samples inside a buffer of length n.
func Delayed(x []float64, delay, n int) []float64 {
	out := make([]float64, n)
	for i, v := range x {
		if j := i + delay; j >= 0 && j < n {
			out[j] = v
		}
	}
	return out
}

package core

// ZeroPad returns a copy of x extended with zeros (or truncated) to length n.
func ZeroPad(x []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	copy(out, x)

	return out
}

// ZeroPadComplex returns a copy of x extended with zeros (or truncated) to length n.
func ZeroPadComplex(x []complex128, n int) []complex128 {
	if n <= 0 {
		return nil
	}

	out := make([]complex128, n)
	copy(out, x)

	return out
}

// ToComplex lifts x into a complex buffer of length n, zero-padding the tail.
func ToComplex(x []float64, n int) []complex128 {
	if n <= 0 {
		return nil
	}

	out := make([]complex128, n)
	for i := 0; i < n && i < len(x); i++ {
		out[i] = complex(x[i], 0)
	}

	return out
}

// RealPart returns the real components of x.
func RealPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}

	return out
}

// ImagPart returns the imaginary components of x.
func ImagPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = imag(v)
	}

	return out
}

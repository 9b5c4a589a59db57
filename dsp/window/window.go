package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window family.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeHann
	TypeKaiser
)

// DefaultKaiserBeta is the Kaiser shape parameter used when none is given.
// Conventional designs use values between 5 and 9; pi is kept because the
// pulse-compression demo was tuned with it.
const DefaultKaiserBeta = math.Pi

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHamming:     "hamming",
	TypeHann:        "hann",
	TypeKaiser:      "kaiser",
}

// String returns the lower-case family name.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("window.Type(%d)", int(t))
}

// Types lists the supported families in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHamming, TypeHann, TypeKaiser}
}

// ParseType resolves a family name, case-insensitively. "hanning" and "rect"
// are accepted as aliases.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "boxcar", "none":
		return TypeRectangular, nil
	case "hamming":
		return TypeHamming, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "kaiser":
		return TypeKaiser, nil
	default:
		return 0, fmt.Errorf("window: unknown family %q: %w", name, core.ErrInvalidParameter)
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

func defaultConfig() config {
	return config{beta: DefaultKaiserBeta}
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithPeriodic selects the periodic (DFT-even) form instead of the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length, or nil for a
// non-positive length. An unknown Type yields the rectangular window; use
// Make to reject it. The symmetric form matches the canonical
// Hamming/Hann/Kaiser definitions over k = 0..length-1.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)
	if cfg.periodic {
		den = float64(length)
	}

	i0Beta := besselI0(cfg.beta)
	for i := range out {
		x := float64(i) / den
		switch t {
		case TypeHamming:
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*x)
		case TypeHann:
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case TypeKaiser:
			r := 2*x - 1
			out[i] = besselI0(cfg.beta*math.Sqrt(math.Max(0, 1-r*r))) / i0Beta
		default:
			out[i] = 1
		}
	}

	return out
}

// Make validates its arguments and returns window coefficients.
func Make(t Type, length int, opts ...Option) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("window: unknown family %d: %w", int(t), core.ErrInvalidParameter)
	}

	return Generate(t, length, opts...), nil
}

// Kaiser returns Kaiser window coefficients for an explicit beta.
func Kaiser(length int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateKaiser(length, beta); err != nil {
		return nil, err
	}

	return Generate(TypeKaiser, length, append(opts, WithBeta(beta))...), nil
}

// Apply multiplies buf in place by the selected window. Like Generate it
// treats an unknown Type as rectangular.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyComplex multiplies complex samples with real coefficients and returns
// a new slice.
func ApplyComplex(samples []complex128, coeffs []float64) ([]complex128, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]complex128, len(samples))
	for i, s := range samples {
		out[i] = complex(real(s)*coeffs[i], imag(s)*coeffs[i])
	}

	return out, nil
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series. The series converges for all x and reaches
// double precision for the beta range windows use.
func besselI0(x float64) float64 {
	half := x / 2
	sum := 1.0
	term := 1.0

	for k := 1; k < 500; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term

		if term < sum*1e-17 {
			break
		}
	}

	return sum
}

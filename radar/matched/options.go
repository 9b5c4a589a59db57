package matched

import (
	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/window"
)

// Option configures Compute.
type Option func(*config)

type config struct {
	proc       core.ProcessorConfig
	window     window.Type
	beta       float64
	lengthMode window.LengthMode
}

func defaultConfig() config {
	return config{
		proc:       core.DefaultProcessorConfig(),
		window:     window.TypeHamming,
		beta:       window.DefaultKaiserBeta,
		lengthMode: window.MatchSignalLength,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSampleRate sets the sample rate in Hz used for the delay axis.
// Non-positive values are ignored.
func WithSampleRate(fs float64) Option {
	return func(c *config) {
		core.WithSampleRate(fs)(&c.proc)
	}
}

// WithWindow selects the taper applied to both inputs. Default Hamming.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithKaiserBeta sets the Kaiser shape parameter.
func WithKaiserBeta(beta float64) Option {
	return func(c *config) {
		c.beta = beta
	}
}

// WithLengthMode selects how the taper is sized. The default,
// window.MatchSignalLength, tapers len(received) samples.
func WithLengthMode(m window.LengthMode) Option {
	return func(c *config) {
		c.lengthMode = m
	}
}

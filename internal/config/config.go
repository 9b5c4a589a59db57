// Package config holds the radarlab configuration: defaults, loading from
// YAML files and RADARLAB_* environment variables through viper, validation,
// and conversion into the radar package parameter records.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-radar/dsp/core"
	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/dsp/window"
	"github.com/cwbudde/algo-radar/radar/matched"
	"github.com/cwbudde/algo-radar/radar/pulse"
)

// EnvPrefix prefixes every environment override, e.g. RADARLAB_PULSE_BANDWIDTH.
const EnvPrefix = "RADARLAB"

// Output formats accepted by the CLI.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatTable, FormatCSV, FormatJSON, FormatYAML}
}

// Config is the complete radarlab configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
	Output   string `mapstructure:"output" yaml:"output"`
	// Seed drives the noise generator; 0 draws from the process-wide source.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	Matched MatchedConfig `mapstructure:"matched" yaml:"matched"`
	Pulse   PulseConfig   `mapstructure:"pulse" yaml:"pulse"`
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
}

// MatchedConfig configures the damped-sinusoid matched-filter run.
type MatchedConfig struct {
	Frequency  float64 `mapstructure:"frequency" yaml:"frequency"`
	Decay      float64 `mapstructure:"decay" yaml:"decay"`
	SNR        float64 `mapstructure:"snr" yaml:"snr"`
	Samples    int     `mapstructure:"samples" yaml:"samples"`
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	Window     string  `mapstructure:"window" yaml:"window"`
	KaiserBeta float64 `mapstructure:"kaiser_beta" yaml:"kaiser_beta"`
}

// PulseConfig configures the pulse-compression run.
type PulseConfig struct {
	PulseWidth       float64 `mapstructure:"pulse_width" yaml:"pulse_width"`
	Bandwidth        float64 `mapstructure:"bandwidth" yaml:"bandwidth"`
	Scatterers       int     `mapstructure:"scatterers" yaml:"scatterers"`
	ScatterSpan      float64 `mapstructure:"scatter_span" yaml:"scatter_span"`
	RCS              float64 `mapstructure:"rcs" yaml:"rcs"`
	RMin             float64 `mapstructure:"rmin" yaml:"rmin"`
	RRec             float64 `mapstructure:"rrec" yaml:"rrec"`
	CarrierFrequency float64 `mapstructure:"carrier_frequency" yaml:"carrier_frequency"`
	Window           string  `mapstructure:"window" yaml:"window"`
	KaiserBeta       float64 `mapstructure:"kaiser_beta" yaml:"kaiser_beta"`
	AddNoise         bool    `mapstructure:"add_noise" yaml:"add_noise"`
	SNR              float64 `mapstructure:"snr" yaml:"snr"`
	Parallel         bool    `mapstructure:"parallel" yaml:"parallel"`
}

// WindowConfig configures the window report.
type WindowConfig struct {
	Size       int     `mapstructure:"size" yaml:"size"`
	Periodic   bool    `mapstructure:"periodic" yaml:"periodic"`
	KaiserBeta float64 `mapstructure:"kaiser_beta" yaml:"kaiser_beta"`
}

// Default returns the interactive demo defaults.
func Default() Config {
	ms := matched.DefaultScenario()
	pp := pulse.DefaultParams()

	return Config{
		LogLevel: "info",
		Output:   FormatTable,
		Matched: MatchedConfig{
			Frequency:  ms.Frequency,
			Decay:      ms.Decay,
			SNR:        ms.SNR,
			Samples:    ms.Samples,
			SampleRate: ms.SampleRate,
			Window:     ms.Window.String(),
			KaiserBeta: ms.KaiserBeta,
		},
		Pulse: PulseConfig{
			PulseWidth:       pp.PulseWidth,
			Bandwidth:        pp.Bandwidth,
			Scatterers:       len(pp.Scatterers),
			ScatterSpan:      pulse.DefaultScatterSpan,
			RCS:              1,
			RMin:             pp.RMin,
			RRec:             pp.RRec,
			CarrierFrequency: pp.CarrierFrequency,
			Window:           pp.Window.String(),
			KaiserBeta:       pp.KaiserBeta,
			SNR:              20,
		},
		Window: WindowConfig{
			Size:       1024,
			KaiserBeta: window.DefaultKaiserBeta,
		},
	}
}

// SetDefaults registers every key of Default with v. Registering all keys
// also lets AutomaticEnv resolve them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("output", d.Output)
	v.SetDefault("seed", d.Seed)

	v.SetDefault("matched.frequency", d.Matched.Frequency)
	v.SetDefault("matched.decay", d.Matched.Decay)
	v.SetDefault("matched.snr", d.Matched.SNR)
	v.SetDefault("matched.samples", d.Matched.Samples)
	v.SetDefault("matched.sample_rate", d.Matched.SampleRate)
	v.SetDefault("matched.window", d.Matched.Window)
	v.SetDefault("matched.kaiser_beta", d.Matched.KaiserBeta)

	v.SetDefault("pulse.pulse_width", d.Pulse.PulseWidth)
	v.SetDefault("pulse.bandwidth", d.Pulse.Bandwidth)
	v.SetDefault("pulse.scatterers", d.Pulse.Scatterers)
	v.SetDefault("pulse.scatter_span", d.Pulse.ScatterSpan)
	v.SetDefault("pulse.rcs", d.Pulse.RCS)
	v.SetDefault("pulse.rmin", d.Pulse.RMin)
	v.SetDefault("pulse.rrec", d.Pulse.RRec)
	v.SetDefault("pulse.carrier_frequency", d.Pulse.CarrierFrequency)
	v.SetDefault("pulse.window", d.Pulse.Window)
	v.SetDefault("pulse.kaiser_beta", d.Pulse.KaiserBeta)
	v.SetDefault("pulse.add_noise", d.Pulse.AddNoise)
	v.SetDefault("pulse.snr", d.Pulse.SNR)
	v.SetDefault("pulse.parallel", d.Pulse.Parallel)

	v.SetDefault("window.size", d.Window.Size)
	v.SetDefault("window.periodic", d.Window.Periodic)
	v.SetDefault("window.kaiser_beta", d.Window.KaiserBeta)
}

// NewViper returns a viper instance with defaults and environment lookup
// configured. A non-empty path selects an explicit config file; otherwise
// radarlab.yaml is searched in the working directory and
// $HOME/.config/radarlab.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("radarlab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/radarlab")
	}

	return v
}

// Read loads the config file into v. A missing file is not an error when no
// explicit path was configured.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && v.ConfigFileUsed() == "" {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads defaults, the optional config file at path and the
// environment, in increasing order of precedence.
func Load(path string) (Config, error) {
	v := NewViper(path)
	if err := Read(v); err != nil {
		return Config{}, err
	}
	return Decode(v)
}

// Validate checks option values that the radar packages would otherwise
// only reject at run time.
func (c Config) Validate() error {
	if !slices.Contains(Formats(), c.Output) {
		return fmt.Errorf("config: output format %q not one of %s: %w",
			c.Output, strings.Join(Formats(), ", "), core.ErrInvalidParameter)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := window.ParseType(c.Matched.Window); err != nil {
		return fmt.Errorf("config: matched.window: %w", err)
	}
	if _, err := window.ParseType(c.Pulse.Window); err != nil {
		return fmt.Errorf("config: pulse.window: %w", err)
	}
	if c.Matched.Samples < 1 {
		return fmt.Errorf("config: matched.samples must be >= 1: %d: %w", c.Matched.Samples, core.ErrInvalidParameter)
	}
	if c.Pulse.Scatterers < 1 {
		return fmt.Errorf("config: pulse.scatterers must be >= 1: %d: %w", c.Pulse.Scatterers, core.ErrInvalidParameter)
	}
	if c.Window.Size < 1 {
		return fmt.Errorf("config: window.size must be >= 1: %d: %w", c.Window.Size, core.ErrInvalidParameter)
	}
	return nil
}

// Scenario converts the matched-filter section.
func (c MatchedConfig) Scenario() (matched.Scenario, error) {
	wt, err := window.ParseType(c.Window)
	if err != nil {
		return matched.Scenario{}, err
	}

	return matched.Scenario{
		Frequency:  c.Frequency,
		Decay:      c.Decay,
		SNR:        c.SNR,
		Samples:    c.Samples,
		SampleRate: c.SampleRate,
		Window:     wt,
		KaiserBeta: c.KaiserBeta,
	}, nil
}

// Params converts the pulse-compression section, laying the scatterers out
// evenly over [rmin, rmin+scatter_span].
func (c PulseConfig) Params() (pulse.Params, error) {
	wt, err := window.ParseType(c.Window)
	if err != nil {
		return pulse.Params{}, err
	}

	scat, err := signal.LinearScatterers(c.RMin, c.ScatterSpan, c.Scatterers, c.RCS)
	if err != nil {
		return pulse.Params{}, err
	}

	return pulse.Params{
		Scatterers:       scat,
		PulseWidth:       c.PulseWidth,
		Bandwidth:        c.Bandwidth,
		RMin:             c.RMin,
		RRec:             c.RRec,
		CarrierFrequency: c.CarrierFrequency,
		Window:           wt,
		KaiserBeta:       c.KaiserBeta,
	}, nil
}

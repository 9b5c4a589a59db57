package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-radar/radar/matched"
	"github.com/cwbudde/algo-radar/stats/response"
)

func newMatchedCommand(app *App) *cobra.Command {
	var (
		f0, tau, fs float64
		snr, beta   float64
		samples     int
		win         string
	)

	cmd := &cobra.Command{
		Use:   "matched",
		Short: "Detect a damped sinusoid in noise with a matched filter",
		Long: `Synthesize a damped sinusoid x(t) = sin(2*pi*f0*t)*exp(-t/tau), add white
Gaussian noise at the requested SNR and correlate it against a replica
centred on t = 0. The output magnitude is centred on zero delay.

Examples:
  radarlab matched --frequency 150 --snr 10
  radarlab matched --window hann --samples 2000 -o csv > matched.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatched(app)
		},
	}

	d := matched.DefaultScenario()
	fl := cmd.Flags()
	siFlag(cmd, &f0, "frequency", "matched.frequency", "Hz", d.Frequency, "tone frequency f0")
	siFlag(cmd, &tau, "decay", "matched.decay", "s", d.Decay, "decay time constant tau")
	siFlag(cmd, &fs, "sample-rate", "matched.sample_rate", "Hz", d.SampleRate, "sample rate")
	fl.Float64Var(&snr, "snr", d.SNR, "signal-to-noise ratio in dB (inf disables noise)")
	fl.IntVarP(&samples, "samples", "n", d.Samples, "number of samples")
	fl.StringVarP(&win, "window", "w", d.Window.String(), "window (rectangular, hamming, hann, kaiser)")
	fl.Float64Var(&beta, "kaiser-beta", d.KaiserBeta, "kaiser shape parameter")
	annotate(fl, "snr", "matched.snr")
	annotate(fl, "samples", "matched.samples")
	annotate(fl, "window", "matched.window")
	annotate(fl, "kaiser-beta", "matched.kaiser_beta")

	return cmd
}

func runMatched(app *App) error {
	s, err := app.cfg.Matched.Scenario()
	if err != nil {
		return err
	}

	app.log.Debugw("matched filter",
		"f0", s.Frequency, "tau", s.Decay, "snr", s.SNR,
		"n", s.Samples, "fs", s.SampleRate, "window", s.Window)

	sim, err := matched.Simulate(s, app.source())
	if err != nil {
		return err
	}

	res := sim.Result
	idx, delay, peak := res.Peak()
	app.log.Infow("matched filter computed", "nfft", res.NFFT, "peak_index", idx, "peak_delay", delay)
	if off := idx - res.ZeroLag; off < -2 || off > 2 {
		app.log.Warnw("peak is away from zero delay; the SNR may be too low", "offset_samples", off)
	}

	beta := s.KaiserBeta
	r := Report{
		Title:   "Matched filter",
		Columns: []string{"delay_s", "magnitude"},
		Rows:    seriesRows(res.Output.Axis, res.Output.Values),
	}
	r.add("frequency", si(s.Frequency, "Hz"))
	r.add("decay", si(s.Decay, "s"))
	r.add("snr", fmt.Sprintf("%g dB", s.SNR))
	r.add("samples", count(s.Samples))
	r.add("sample rate", si(s.SampleRate, "Hz"))
	r.add("window", windowLabel(s.Window, beta))
	r.add("nfft", count(res.NFFT))
	r.add("peak index", count(idx))
	r.add("peak delay", si(delay, "s"))
	r.add("peak magnitude", fmt.Sprintf("%.6g", peak))
	addLobeFields(&r, response.Calculate(res.Output.Values), 1/res.SampleRate, "s")

	return app.render(r)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-radar/internal/config"
	"github.com/cwbudde/algo-radar/radar/pulse"
	"github.com/cwbudde/algo-radar/stats/response"
)

const (
	seriesCompressed   = "compressed"
	seriesUncompressed = "uncompressed"
)

func newCompressCommand(app *App) *cobra.Command {
	var (
		taup, bw, rmin, rrec, f0, span float64
		rcs, beta, snr                 float64
		nscat                          int
		win, series                    string
		noise, parallel                bool
	)

	cmd := &cobra.Command{
		Use:     "compress",
		Aliases: []string{"pulse"},
		Short:   "Compress linear-FM returns from a set of point scatterers",
		Long: `Synthesize the windowed linear-FM return of scatterers spread evenly over
[rmin, rmin+scatter-span], FFT-compress it and print the compressed
magnitude against relative delay and absolute range.

Scatterers further than deltar*nfft/2 from rmin wrap around the
compressed axis; a warning names them.

Examples:
  radarlab compress
  radarlab compress --bandwidth 500MHz --rrec 60m --window kaiser
  radarlab compress --noise --snr 0 --seed 7 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompress(app, series)
		},
	}

	d := config.Default().Pulse
	fl := cmd.Flags()
	siFlag(cmd, &taup, "pulse-width", "pulse.pulse_width", "s", d.PulseWidth, "pulse width")
	siFlag(cmd, &bw, "bandwidth", "pulse.bandwidth", "Hz", d.Bandwidth, "chirp bandwidth")
	siFlag(cmd, &rmin, "rmin", "pulse.rmin", "m", d.RMin, "range mapped to zero relative delay")
	siFlag(cmd, &rrec, "rrec", "pulse.rrec", "m", d.RRec, "receive window extent")
	siFlag(cmd, &f0, "carrier", "pulse.carrier_frequency", "Hz", d.CarrierFrequency, "carrier frequency")
	siFlag(cmd, &span, "scatter-span", "pulse.scatter_span", "m", d.ScatterSpan, "extent the scatterers are spread over")
	fl.IntVar(&nscat, "scatterers", d.Scatterers, "number of scatterers")
	fl.Float64Var(&rcs, "rcs", d.RCS, "radar cross section of every scatterer")
	fl.StringVarP(&win, "window", "w", d.Window, "window (rectangular, hamming, hann, kaiser)")
	fl.Float64Var(&beta, "kaiser-beta", d.KaiserBeta, "kaiser shape parameter")
	fl.BoolVar(&noise, "noise", d.AddNoise, "add complex white noise before compression")
	fl.Float64Var(&snr, "snr", d.SNR, "signal-to-noise ratio in dB when --noise is set")
	fl.BoolVar(&parallel, "parallel", d.Parallel, "synthesize scatterer returns concurrently")
	fl.StringVar(&series, "series", seriesCompressed, "series to print (compressed, uncompressed)")
	annotate(fl, "scatterers", "pulse.scatterers")
	annotate(fl, "rcs", "pulse.rcs")
	annotate(fl, "window", "pulse.window")
	annotate(fl, "kaiser-beta", "pulse.kaiser_beta")
	annotate(fl, "noise", "pulse.add_noise")
	annotate(fl, "snr", "pulse.snr")
	annotate(fl, "parallel", "pulse.parallel")

	return cmd
}

func runCompress(app *App, series string) error {
	if series != seriesCompressed && series != seriesUncompressed {
		return fmt.Errorf("--series must be %s or %s, got %q", seriesCompressed, seriesUncompressed, series)
	}

	pc := app.cfg.Pulse
	p, err := pc.Params()
	if err != nil {
		return err
	}

	opts := []pulse.Option{pulse.WithParallel(pc.Parallel)}
	if pc.AddNoise {
		opts = append(opts, pulse.WithNoise(pc.SNR, app.source()))
	}

	res, err := pulse.Compute(p, opts...)
	if err != nil {
		return err
	}

	app.log.Infow("pulse compressed",
		"n", res.N, "nfft", res.NFFT,
		"range_resolution_m", res.RangeResolution,
		"max_unambiguous_m", res.MaxUnambiguousRange)
	for _, i := range res.Aliased {
		app.log.Warnw("scatterer outside the unambiguous range window; its peak wraps around",
			"scatterer", i, "range_m", p.Scatterers[i].Range, "limit_m", p.RMin+res.MaxUnambiguousRange)
	}

	idx, delay, rng := res.Peak()

	r := Report{Title: "Pulse compression"}
	r.add("pulse width", si(p.PulseWidth, "s"))
	r.add("bandwidth", si(p.Bandwidth, "Hz"))
	r.add("carrier", si(p.CarrierFrequency, "Hz"))
	r.add("scatterers", count(len(p.Scatterers)))
	r.add("window", windowLabel(p.Window, p.KaiserBeta))
	if pc.AddNoise {
		r.add("snr", fmt.Sprintf("%g dB", pc.SNR))
	}
	r.add("samples", count(res.N))
	r.add("nfft", count(res.NFFT))
	r.add("sample spacing", si(res.DeltaT, "s"))
	r.add("range resolution", si(res.RangeResolution, "m"))
	r.add("unambiguous window", si(res.MaxUnambiguousRange, "m"))
	r.add("peak bin", count(idx))
	r.add("peak delay", si(delay, "s"))
	r.add("peak range", si(rng, "m"))
	addLobeFields(&r, response.Calculate(res.Compressed.Values), res.RangeResolution, "m")

	if series == seriesUncompressed {
		r.Columns = []string{"delay_s", "amplitude"}
		r.Rows = seriesRows(res.Uncompressed.Axis, res.Uncompressed.Values)
	} else {
		r.Columns = []string{"delay_s", "range_m", "magnitude"}
		r.Rows = seriesRows(res.Compressed.Axis, res.Range, res.Compressed.Values)
	}

	return app.render(r)
}

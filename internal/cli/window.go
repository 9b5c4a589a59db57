package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-radar/dsp/window"
	"github.com/cwbudde/algo-radar/internal/config"
)

func newWindowCommand(app *App) *cobra.Command {
	var (
		size         int
		periodic     bool
		beta         float64
		coefficients bool
	)

	cmd := &cobra.Command{
		Use:   "window [family ...]",
		Short: "Print spectral properties of window functions",
		Long: `Print coherent gain, equivalent noise bandwidth, 3 dB width, highest
sidelobe and scalloping loss for each window family. Without arguments
every family is listed.

Examples:
  radarlab window
  radarlab window --size 4096 kaiser --kaiser-beta 8
  radarlab window hann --coefficients -o csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(app, args, coefficients)
		},
	}

	d := config.Default().Window
	fl := cmd.Flags()
	fl.IntVarP(&size, "size", "n", d.Size, "window length in samples")
	fl.BoolVar(&periodic, "periodic", d.Periodic, "use the periodic (DFT-even) form")
	fl.Float64Var(&beta, "kaiser-beta", d.KaiserBeta, "kaiser shape parameter")
	fl.BoolVar(&coefficients, "coefficients", false, "print the coefficients of a single family")
	annotate(fl, "size", "window.size")
	annotate(fl, "periodic", "window.periodic")
	annotate(fl, "kaiser-beta", "window.kaiser_beta")

	return cmd
}

func runWindow(app *App, names []string, coefficients bool) error {
	types, err := resolveTypes(names)
	if err != nil {
		return err
	}
	if coefficients && len(types) != 1 {
		return fmt.Errorf("--coefficients needs exactly one window family, got %d", len(types))
	}

	wc := app.cfg.Window
	opts := []window.Option{window.WithBeta(wc.KaiserBeta)}
	if wc.Periodic {
		opts = append(opts, window.WithPeriodic())
	}

	if coefficients {
		return renderCoefficients(app, types[0], wc, opts)
	}

	r := Report{
		Title:   "Windows",
		Columns: []string{"window", "size", "coherent_gain", "enbw_bins", "bw_3db_bins", "sidelobe_db", "scallop_db"},
	}
	r.add("size", count(wc.Size))
	r.add("form", formName(wc.Periodic))

	for _, t := range types {
		coeffs, err := window.Make(t, wc.Size, opts...)
		if err != nil {
			return err
		}
		a := window.Analyze(coeffs)
		app.log.Debugw("window analyzed", "window", t, "enbw", a.ENBW)

		r.Rows = append(r.Rows, []any{
			windowLabel(t, wc.KaiserBeta),
			wc.Size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.ScallopLossdB,
		})
	}

	return app.render(r)
}

func renderCoefficients(app *App, t window.Type, wc config.WindowConfig, opts []window.Option) error {
	coeffs, err := window.Make(t, wc.Size, opts...)
	if err != nil {
		return err
	}
	a := window.Analyze(coeffs)

	r := Report{
		Title:   windowLabel(t, wc.KaiserBeta),
		Columns: []string{"index", "coefficient"},
		Rows:    make([][]any, len(coeffs)),
	}
	r.add("size", count(wc.Size))
	r.add("form", formName(wc.Periodic))
	r.add("coherent gain", fmt.Sprintf("%.6f", a.CoherentGain))
	r.add("sidelobe", decibels(a.HighestSidelobedB))
	for i, c := range coeffs {
		r.Rows[i] = []any{i, c}
	}

	return app.render(r)
}

// resolveTypes parses family names, keeping order and dropping repeats.
// No names selects every family.
func resolveTypes(names []string) ([]window.Type, error) {
	if len(names) == 0 {
		return window.Types(), nil
	}

	seen := make(map[window.Type]bool, len(names))
	types := make([]window.Type, 0, len(names))
	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types, nil
}

func formName(periodic bool) string {
	if periodic {
		return "periodic"
	}
	return "symmetric"
}

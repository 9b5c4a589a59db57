package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-radar/dsp/conv"
)

func newCorrelateCommand(app *App) *cobra.Command {
	var (
		input, mode string
		normalize   bool
	)

	cmd := &cobra.Command{
		Use:   "correlate",
		Short: "Cross-correlate the signal and template columns of a CSV file",
		Long: `Read a CSV file with a header row naming "signal" and "template" columns
and print the cross-correlation of signal against template with the lag of
every output sample. The template column may be shorter than the signal;
trailing empty cells are ignored. Use "-" to read from stdin.

Examples:
  radarlab correlate --input capture.csv
  radarlab correlate --input capture.csv --mode full -o csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := conv.ParseMode(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}

			var r io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			return runCorrelate(app, r, m, normalize)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&input, "input", "i", "", `CSV file with signal and template columns ("-" for stdin)`)
	fl.StringVar(&mode, "mode", conv.ModeSame.String(), "output extent (full, same, valid)")
	fl.BoolVar(&normalize, "normalize", false, "divide by the product of the input norms (full mode only)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCorrelate(app *App, in io.Reader, mode conv.Mode, normalize bool) error {
	signal, template, err := readColumns(in, "signal", "template")
	if err != nil {
		return err
	}
	app.log.Debugw("correlation input", "signal", len(signal), "template", len(template), "mode", mode)

	var out []float64
	switch {
	case normalize && mode != conv.ModeFull:
		return errors.New("--normalize is only supported with --mode full")
	case normalize:
		out, err = conv.CorrelateNormalized(signal, template)
	default:
		out, err = conv.CorrelateMode(signal, template, mode)
	}
	if err != nil {
		return err
	}

	offset := conv.LagOffset(mode, len(signal), len(template))
	peak, value := conv.FindPeak(out)
	app.log.Infow("correlated", "length", len(out), "peak_lag", peak+offset)

	r := Report{
		Title:   "Cross-correlation",
		Columns: []string{"lag", "value"},
		Rows:    make([][]any, len(out)),
	}
	r.add("signal", count(len(signal)))
	r.add("template", count(len(template)))
	r.add("mode", mode.String())
	r.add("peak lag", strconv.Itoa(peak+offset))
	r.add("peak value", fmt.Sprintf("%.6g", value))
	for i, v := range out {
		r.Rows[i] = []any{i + offset, v}
	}

	return app.render(r)
}

// readColumns extracts the named numeric columns from CSV with a header row.
// Each column ends at its first empty cell; cells after it must also be empty.
func readColumns(in io.Reader, names ...string) ([]float64, []float64, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("csv: empty input")
		}
		return nil, nil, fmt.Errorf("csv: %w", err)
	}

	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, nil, fmt.Errorf("csv: missing %q column", name)
		}
	}

	cols := make([][]float64, len(names))
	ended := make([]bool, len(names))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csv: %w", err)
		}

		for i, j := range idx {
			cell := ""
			if j < len(rec) {
				cell = strings.TrimSpace(rec[j])
			}
			if cell == "" {
				ended[i] = true
				continue
			}
			if ended[i] {
				return nil, nil, fmt.Errorf("csv: line %d: %s value after an empty cell", line, names[i])
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("csv: line %d: %s: %w", line, names[i], err)
			}
			cols[i] = append(cols[i], v)
		}
	}

	return cols[0], cols[1], nil
}

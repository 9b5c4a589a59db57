package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-radar/internal/config"
)

// Field is one summary line of a report.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Report is the rendered result of a command: a few summary fields followed
// by a column table.
type Report struct {
	Title   string   `json:"title" yaml:"title"`
	Summary []Field  `json:"summary,omitempty" yaml:"summary,omitempty"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

func (r *Report) add(key, value string) {
	r.Summary = append(r.Summary, Field{Key: key, Value: value})
}

// seriesRows zips equal-length columns into rows.
func seriesRows(cols ...[]float64) [][]any {
	if len(cols) == 0 {
		return nil
	}
	rows := make([][]any, len(cols[0]))
	for i := range rows {
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = c[i]
		}
		rows[i] = row
	}
	return rows
}

// render writes r to w in the given format. summaryOnly drops the rows.
func render(w io.Writer, format string, r Report, summaryOnly bool) error {
	if summaryOnly {
		r.Columns, r.Rows = nil, nil
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatCSV:
		return renderCSV(w, r)
	case config.FormatTable:
		return renderTable(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if len(r.Columns) == 0 {
		_ = cw.Write([]string{"key", "value"})
		for _, f := range r.Summary {
			_ = cw.Write([]string{f.Key, f.Value})
		}
	} else {
		_ = cw.Write(r.Columns)
		for _, row := range r.Rows {
			_ = cw.Write(formatRow(row))
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderTable(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if r.Title != "" {
		fmt.Fprintf(tw, "%s\n\n", r.Title)
	}
	for _, f := range r.Summary {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Key, f.Value)
	}
	if len(r.Columns) > 0 {
		if len(r.Summary) > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, strings.Join(r.Columns, "\t"))
		for _, row := range r.Rows {
			fmt.Fprintln(tw, strings.Join(formatRow(row), "\t"))
		}
	}

	return tw.Flush()
}

func formatRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = formatCell(v)
	}
	return out
}

func formatCell(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', 8, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

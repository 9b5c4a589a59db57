package cli

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/algo-radar/dsp/window"
	"github.com/cwbudde/algo-radar/stats/response"
)

var titleCaser = cases.Title(language.English)

// windowLabel returns the display name of a window family, e.g. "Kaiser
// (beta=3.14)".
func windowLabel(t window.Type, beta float64) string {
	name := titleCaser.String(t.String())
	if t == window.TypeKaiser {
		name += " (beta=" + strconv.FormatFloat(beta, 'g', 3, 64) + ")"
	}
	return name
}

// si formats v with an SI prefix, e.g. si(5.6e9, "Hz") is "5.6 GHz".
func si(v float64, unit string) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64) + " " + unit
	}
	return humanize.SIWithDigits(v, 3, unit)
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func decibels(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " dB"
}

// addLobeFields reports the mainlobe width and sidelobe ratios of a
// response sampled every step units.
func addLobeFields(r *Report, s response.Stats, step float64, unit string) {
	r.add("3 dB width", si(s.Width3dB*step, unit))
	r.add("pslr", decibels(s.PSLR_dB))
	r.add("islr", decibels(s.ISLR_dB))
}

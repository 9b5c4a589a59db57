package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var keyComments = map[string]string{
	"log_level":               "debug, info, warn or error",
	"output":                  "table, csv, json or yaml",
	"seed":                    "noise seed; 0 picks a random one per run",
	"matched":                 "Damped-sinusoid matched filter",
	"matched.decay":           "time constant tau, seconds",
	"matched.snr":             "signal-to-noise ratio, dB",
	"matched.window":          "rectangular, hamming, hann or kaiser",
	"pulse":                   "Linear-FM pulse compression",
	"pulse.pulse_width":       "seconds",
	"pulse.bandwidth":         "Hz; range resolution is c/(2B)",
	"pulse.scatterers":        "count, spread evenly over [rmin, rmin+scatter_span]",
	"pulse.rmin":              "metres; maps to zero relative delay",
	"pulse.rrec":              "receive window extent, metres",
	"pulse.kaiser_beta":       "shape parameter when window is kaiser",
	"window":                  "Window report",
	"pulse.carrier_frequency": "Hz",
	"matched.sample_rate":     "Hz",
	"window.periodic":         "DFT-even form instead of symmetric",
}

// WriteYAML writes c as YAML annotated with short key descriptions.
func WriteYAML(w io.Writer, c Config) error {
	var doc yaml.Node
	if err := doc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	annotate(&doc, "")

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return enc.Close()
}

func annotate(n *yaml.Node, prefix string) {
	if n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		path := prefix + key.Value
		if c := keyComments[path]; c != "" {
			key.HeadComment = c
		}
		annotate(val, path+".")
	}
}

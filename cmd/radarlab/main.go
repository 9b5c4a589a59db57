// Command radarlab runs matched-filter and pulse-compression experiments.
//
// Usage:
//
//	radarlab [command] [flags]
//
// Examples:
//
//	radarlab matched --frequency 150 --snr 10
//	radarlab compress --bandwidth 500MHz -o csv
//	radarlab window hann kaiser
//	radarlab correlate --input capture.csv
//	radarlab config init
package main

import "github.com/cwbudde/algo-radar/internal/cli"

func main() {
	cli.Execute()
}

package pulse_test

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/radar/pulse"
)

func ExampleCompute() {
	p := pulse.DefaultParams()
	p.Scatterers = []signal.Scatterer{{Range: p.RMin + 3, RCS: 1}}

	res, err := pulse.Compute(p)
	if err != nil {
		panic(err)
	}

	idx, _, rng := res.Peak()
	fmt.Printf("nfft=%d deltar=%.2fm peak bin=%d range=%.2fm\n",
		res.NFFT, res.RangeResolution, idx, rng)

	// Output:
	// nfft=512 deltar=0.15m peak bin=276 range=150003.00m
}

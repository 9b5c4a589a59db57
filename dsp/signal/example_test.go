package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/signal"
)

func ExampleLinearScatterers() {
	s, err := signal.LinearScatterers(150000, 1000, 3, 1)
	if err != nil {
		panic(err)
	}
	for _, sc := range s {
		fmt.Printf("%.0f m rcs=%.0f\n", sc.Range, sc.RCS)
	}

	// Output:
	// 150000 m rcs=1
	// 150500 m rcs=1
	// 151000 m rcs=1
}

func ExampleSynthesize() {
	w, err := signal.Synthesize(signal.KindDampedSinusoid, signal.Params{
		Frequency:  250,
		Decay:      1,
		Samples:    4,
		SampleRate: 1000,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d samples, x[1]=%.3f\n", w.Len(), w.Real[1])

	// Output:
	// 4 samples, x[1]=0.999
}

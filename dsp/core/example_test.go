package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/core"
)

func ExampleFFTSize() {
	for _, n := range []int{100, 1000, 1999} {
		nfft, _ := core.FFTSize(n)
		fmt.Println(n, nfft)
	}

	// Output:
	// 100 128
	// 1000 1024
	// 1999 2048
}

func ExampleRangeResolution() {
	fmt.Printf("%.2f m\n", core.RangeResolution(1e9))

	// Output:
	// 0.15 m
}

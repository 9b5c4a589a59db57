package matched

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/signal"
	"github.com/cwbudde/algo-radar/dsp/window"
)

// Scenario describes a damped-sinusoid detection run.
type Scenario struct {
	Frequency  float64 // tone frequency f0, Hz
	Decay      float64 // time constant tau, s
	SNR        float64 // dB; +Inf disables noise
	Samples    int
	SampleRate float64
	Window     window.Type
	KaiserBeta float64
}

// DefaultScenario returns f0=100 Hz, tau=5 ms, SNR=5 dB, n=1000, fs=1 kHz
// with a Hamming taper.
func DefaultScenario() Scenario {
	return Scenario{
		Frequency:  100,
		Decay:      0.005,
		SNR:        5,
		Samples:    1000,
		SampleRate: 1000,
		Window:     window.TypeHamming,
		KaiserBeta: window.DefaultKaiserBeta,
	}
}

// Simulation bundles the synthesized inputs with the filter output.
type Simulation struct {
	Received []float64
	Replica  []float64
	Result   Result
}

// Simulate synthesizes the received record (the tone starting at t = 0 plus
// noise drawn from src) and its centred replica, then runs Compute. A nil
// src uses the process-wide random source.
func Simulate(s Scenario, src signal.Source) (Simulation, error) {
	clean, err := signal.DampedSine(s.Frequency, s.Decay, s.Samples, s.SampleRate, 0)
	if err != nil {
		return Simulation{}, fmt.Errorf("matched: %w", err)
	}

	received, err := signal.AddNoise(clean, s.SNR, src)
	if err != nil {
		return Simulation{}, fmt.Errorf("matched: %w", err)
	}

	replica, err := Replica(s.Frequency, s.Decay, s.Samples, s.SampleRate)
	if err != nil {
		return Simulation{}, err
	}

	res, err := Compute(received, replica,
		WithSampleRate(s.SampleRate),
		WithWindow(s.Window),
		WithKaiserBeta(s.KaiserBeta),
	)
	if err != nil {
		return Simulation{}, err
	}

	return Simulation{Received: received, Replica: replica, Result: res}, nil
}

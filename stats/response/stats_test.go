package response

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.PeakPos != -1 || s.MainlobeStart != -1 {
		t.Fatalf("empty stats = %+v", s)
	}
	for name, v := range map[string]float64{"peak": s.Peak_dB, "pslr": s.PSLR_dB, "islr": s.ISLR_dB} {
		if !math.IsInf(v, -1) {
			t.Fatalf("%s = %v, want -Inf", name, v)
		}
	}
}

func TestCalculateImpulse(t *testing.T) {
	s := Calculate([]float64{0, 0, 1, 0, 0})

	if s.Peak != 1 || s.PeakPos != 2 || s.Peak_dB != 0 {
		t.Fatalf("peak = %v at %d (%v dB)", s.Peak, s.PeakPos, s.Peak_dB)
	}
	if s.MainlobeStart != 1 || s.MainlobeEnd != 3 {
		t.Fatalf("mainlobe = [%d, %d], want [1, 3]", s.MainlobeStart, s.MainlobeEnd)
	}
	if !math.IsInf(s.PSLR_dB, -1) || !math.IsInf(s.ISLR_dB, -1) {
		t.Fatalf("pslr/islr = %v/%v, want -Inf", s.PSLR_dB, s.ISLR_dB)
	}
	if !almostEqual(s.CrestFactor, math.Sqrt(5), tolerance) {
		t.Fatalf("crest = %v, want sqrt(5)", s.CrestFactor)
	}
}

func TestCalculateSidelobes(t *testing.T) {
	mag := []float64{0.1, 0.5, 0.2, 1, 0.3, 0.05, 0.25, 0}
	s := Calculate(mag)

	if s.PeakPos != 3 || s.MainlobeStart != 2 || s.MainlobeEnd != 5 {
		t.Fatalf("peak %d mainlobe [%d, %d], want 3 [2, 5]", s.PeakPos, s.MainlobeStart, s.MainlobeEnd)
	}

	if want := 20 * math.Log10(0.5); !almostEqual(s.PSLR_dB, want, tolerance) {
		t.Fatalf("PSLR = %v, want %v", s.PSLR_dB, want)
	}

	side := 0.01 + 0.25 + 0.0625
	main := 0.04 + 1 + 0.09 + 0.0025
	if want := 10 * math.Log10(side/main); !almostEqual(s.ISLR_dB, want, tolerance) {
		t.Fatalf("ISLR = %v, want %v", s.ISLR_dB, want)
	}

	thr := 1 / math.Sqrt2
	left := 2 + (thr-0.2)/0.8
	right := 3 + (1-thr)/0.7
	if want := right - left; !almostEqual(s.Width3dB, want, tolerance) {
		t.Fatalf("Width3dB = %v, want %v", s.Width3dB, want)
	}
}

func TestCalculateSinc(t *testing.T) {
	// Four samples per null spacing, peak at 32, first nulls at 28 and 36.
	mag := make([]float64, 65)
	for k := range mag {
		mag[k] = math.Abs(sinc(float64(k-32) / 4))
	}
	s := Calculate(mag)

	if s.PeakPos != 32 || s.MainlobeStart != 28 || s.MainlobeEnd != 36 {
		t.Fatalf("peak %d mainlobe [%d, %d], want 32 [28, 36]", s.PeakPos, s.MainlobeStart, s.MainlobeEnd)
	}

	// Highest sampled sidelobe sits at x = 1.5.
	if want := 20 * math.Log10(2/(3*math.Pi)); !almostEqual(s.PSLR_dB, want, 1e-9) {
		t.Fatalf("PSLR = %v, want %v", s.PSLR_dB, want)
	}
	if s.PSLR_dB > -13 {
		t.Fatalf("PSLR = %v dB, want below -13 dB", s.PSLR_dB)
	}

	// Half-power width of sinc is about 0.886 null spacings.
	if s.Width3dB < 3.3 || s.Width3dB > 3.7 {
		t.Fatalf("Width3dB = %v samples, want ~3.54", s.Width3dB)
	}
}

func TestCalculateNegativeInput(t *testing.T) {
	a := Calculate([]float64{0.1, -1, 0.2})
	b := Calculate([]float64{0.1, 1, 0.2})
	if a != b {
		t.Fatalf("sign changed result: %+v vs %+v", a, b)
	}
}

func TestCalculateFlatEdges(t *testing.T) {
	s := Calculate([]float64{1, 1, 1})
	if s.PeakPos != 0 || s.MainlobeStart != 0 || s.MainlobeEnd != 0 {
		t.Fatalf("flat: peak %d mainlobe [%d, %d]", s.PeakPos, s.MainlobeStart, s.MainlobeEnd)
	}
	if s.Width3dB != 2 {
		t.Fatalf("flat Width3dB = %v, want 2", s.Width3dB)
	}
	if want := 20 * math.Log10(1.0); s.PSLR_dB != want {
		t.Fatalf("flat PSLR = %v, want 0", s.PSLR_dB)
	}
}

func TestMainlobeOutOfRange(t *testing.T) {
	if s, e := Mainlobe([]float64{1, 2}, 5); s != -1 || e != -1 {
		t.Fatalf("Mainlobe out of range = [%d, %d]", s, e)
	}
}

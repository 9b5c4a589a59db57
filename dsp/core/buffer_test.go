package core

import "testing"

func TestZeroPad(t *testing.T) {
	got := ZeroPad([]float64{1, 2}, 4)
	want := []float64{1, 2, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ZeroPad[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if tr := ZeroPad([]float64{1, 2, 3}, 2); len(tr) != 2 || tr[1] != 2 {
		t.Fatalf("ZeroPad truncation = %v", tr)
	}
	if ZeroPad([]float64{1}, 0) != nil {
		t.Fatal("ZeroPad n=0 should be nil")
	}
}

func TestToComplexAndParts(t *testing.T) {
	c := ToComplex([]float64{1, -2}, 4)
	if len(c) != 4 || c[0] != 1 || c[1] != -2 || c[3] != 0 {
		t.Fatalf("ToComplex = %v", c)
	}

	x := []complex128{complex(1, 2), complex(-3, 4)}
	re := RealPart(x)
	im := ImagPart(x)
	if re[1] != -3 || im[0] != 2 {
		t.Fatalf("RealPart=%v ImagPart=%v", re, im)
	}

	p := ZeroPadComplex(x, 3)
	if len(p) != 3 || p[2] != 0 || p[1] != x[1] {
		t.Fatalf("ZeroPadComplex = %v", p)
	}
}

func TestSeriesPeak(t *testing.T) {
	s, err := NewSeries([]float64{-1, 0, 1}, []float64{0.2, 3, 1})
	if err != nil {
		t.Fatal(err)
	}

	idx, at, v := s.Peak()
	if idx != 1 || at != 0 || v != 3 {
		t.Fatalf("Peak() = %d, %v, %v; want 1, 0, 3", idx, at, v)
	}

	if idx, _, _ := (Series{}).Peak(); idx != -1 {
		t.Fatalf("empty Peak index = %d, want -1", idx)
	}

	if _, err := NewSeries([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-notebook/internal/testutil"
)

func TestGenerateShapes(t *testing.T) {
	tests := []struct {
		typ        Type
		edge, peak float64
	}{
		{TypeRectangular, 1, 1},
		{TypeHann, 0, 1},
		{TypeHamming, 0.08, 1},
		{TypeBlackman, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			w := Generate(tc.typ, 65)
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}
			testutil.RequireFinite(t, w)
			if math.Abs(w[0]-tc.edge) > 1e-12 || math.Abs(w[64]-tc.edge) > 1e-12 {
				t.Fatalf("edges=(%v, %v), want %v", w[0], w[64], tc.edge)
			}
			if math.Abs(w[32]-tc.peak) > 1e-12 {
				t.Fatalf("centre=%v, want %v", w[32], tc.peak)
			}
			for i := range w {
				if math.Abs(w[i]-w[64-i]) > 1e-12 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[64-i])
				}
			}
		})
	}
}

func TestGeneratePeriodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())
	want := []float64{0, 0.1464466094, 0.5, 0.8535533906, 1, 0.8535533906, 0.5, 0.1464466094}
	testutil.RequireSliceNearlyEqual(t, w, want, 1e-9)
}

func TestGenerateEmpty(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil, got %v", w)
	}
	if _, err := Hann(-1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeHann, buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0, 1, 2, 1, 0}, 1e-12)

	Apply(TypeHann, nil)
}

func TestApplyCoefficients(t *testing.T) {
	coeffs, err := Hann(5)
	if err != nil {
		t.Fatalf("Hann: %v", err)
	}

	out, err := ApplyCoefficients([]float64{4, 4, 4, 4, 4}, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 2, 4, 2, 0}, 1e-12)

	if _, err := ApplyCoefficients([]float64{1}, coeffs); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if err := ApplyCoefficientsInPlace([]float64{1, 2}, coeffs); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestCoherentGain(t *testing.T) {
	g, err := CoherentGain(Generate(TypeHann, 1024, WithPeriodic()))
	if err != nil {
		t.Fatalf("CoherentGain: %v", err)
	}
	if math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("gain=%v, want 0.5", g)
	}
	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range typeNames {
		got, err := ParseType(" " + name + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q)=(%v, %v), want %v", name, got, err, typ)
		}
	}
	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

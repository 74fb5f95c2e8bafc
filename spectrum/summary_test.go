package spectrum

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	res := Result{
		Frequency:            triple(1, 2, 3),
		IntegralContribution: triple(1, 2, 1),
	}

	s := Summarize(res)
	if s.Count != 3 {
		t.Fatalf("Count=%d want=3", s.Count)
	}
	if s.TotalContribution != 4 {
		t.Fatalf("TotalContribution=%f want=4", s.TotalContribution)
	}
	if s.DominantFrequency != 2 || s.DominantContribution != 2 {
		t.Fatalf("dominant=(%f, %f) want=(2, 2)", s.DominantFrequency, s.DominantContribution)
	}
	if math.Abs(s.Centroid-2) > 1e-12 {
		t.Fatalf("Centroid=%f want=2", s.Centroid)
	}
	// weights 1,2,1 at distances 1,0,1 -> variance 2/4
	if math.Abs(s.Spread-math.Sqrt(0.5)) > 1e-12 {
		t.Fatalf("Spread=%f want=%f", s.Spread, math.Sqrt(0.5))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(Result{}); s != (Summary{}) {
		t.Fatalf("expected zero Summary, got %+v", s)
	}
}

func TestSummarizeZeroContribution(t *testing.T) {
	s := Summarize(Result{Frequency: triple(4, 5), IntegralContribution: triple(0, 0)})
	if s.Count != 2 || s.Centroid != 0 || s.Spread != 0 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.DominantFrequency != 4 {
		t.Fatalf("DominantFrequency=%f want first entry", s.DominantFrequency)
	}
}

package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-notebook/spectrum"
)

func ExampleSorted() {
	rec := spectrum.NewRecord(
		spectrum.Measurement{
			Value: []float64{5, 1, 3},
			Std:   []float64{0.5, 0.1, 0.3},
			CI:    []float64{1, 0.2, 0.6},
		},
		spectrum.Measurement{
			Value: []float64{10, 1, 20},
			Std:   []float64{1, 0.1, 2},
			CI:    []float64{2, 0.2, 4},
		},
	)

	res, err := spectrum.Sorted(rec, 2, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, _, _, i, _, _ := res.Values()
	fmt.Println(f, i)
	// Output:
	// [3 5] [20 10]
}

func ExampleSummarize() {
	res := spectrum.Result{
		Frequency:            spectrum.Measurement{Value: []float64{10, 20}},
		IntegralContribution: spectrum.Measurement{Value: []float64{1, 3}},
	}
	s := spectrum.Summarize(res)
	fmt.Printf("dominant=%.0f centroid=%.1f\n", s.DominantFrequency, s.Centroid)
	// Output:
	// dominant=20 centroid=17.5
}

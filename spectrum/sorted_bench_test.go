package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-notebook/internal/testutil"
	"github.com/cwbudde/algo-notebook/random"
)

func BenchmarkSorted(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			src := random.New(1)
			fv, fs, fc := testutil.RandomTriple(src, testCase.size, 0, 1000)
			iv, is, ic := testutil.RandomTriple(src, testCase.size, 0, 1)
			rec := NewRecord(Measurement{fv, fs, fc}, Measurement{iv, is, ic})

			b.ResetTimer()

			for range b.N {
				if _, err := Sorted(rec, 100, 0.1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

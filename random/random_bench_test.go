package random

import "testing"

func BenchmarkNormal(b *testing.B) {
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
			src := New(1)
			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				_ = src.Normal(testCase.size, 0, 1)
			}
		})
	}
}

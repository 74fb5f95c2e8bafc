package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds contribution-weighted descriptors of a filtered spectrum.
type Summary struct {
	Count                int
	TotalContribution    float64
	DominantFrequency    float64 // frequency of the largest contribution
	DominantContribution float64
	Centroid             float64 // contribution-weighted mean frequency
	Spread               float64 // contribution-weighted std around Centroid
}

// Summarize computes [Summary] for r. Contributions act as weights; an empty
// result or a zero total contribution leaves Centroid and Spread at zero.
func Summarize(r Result) Summary {
	f := r.Frequency.Value
	c := r.IntegralContribution.Value
	n := len(f)
	if n == 0 || len(c) != n {
		return Summary{}
	}

	s := Summary{Count: n}

	dom := 0
	for k, v := range c {
		s.TotalContribution += v
		if v > c[dom] {
			dom = k
		}
	}
	s.DominantFrequency = f[dom]
	s.DominantContribution = c[dom]

	if s.TotalContribution == 0 {
		return s
	}

	weighted := make([]float64, n)
	vecmath.MulBlock(weighted, f, c)

	sum := 0.0
	for _, v := range weighted {
		sum += v
	}
	s.Centroid = sum / s.TotalContribution

	variance := 0.0
	for k := range f {
		d := f[k] - s.Centroid
		variance += c[k] * d * d
	}
	s.Spread = math.Sqrt(math.Max(variance/s.TotalContribution, 0))

	return s
}

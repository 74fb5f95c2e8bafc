package random

import (
	"math/rand"
	randv2 "math/rand/v2"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// pcgStream decorrelates the numeric stream from the general stream when both
// are derived from the same seed.
const pcgStream = 0x9e3779b97f4a7c15

// Source bundles the general-purpose and numeric generators.
//
// A Source is not safe for concurrent use. The package-level functions use a
// shared, mutex-guarded Source instead.
type Source struct {
	seed    int64
	general *rand.Rand
	numeric *randv2.Rand
}

// New returns a Source whose generators are both seeded with seed.
func New(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets both generators to the state derived from seed.
func (s *Source) Seed(seed int64) {
	s.seed = seed
	s.general = rand.New(rand.NewSource(seed))
	s.numeric = randv2.New(randv2.NewPCG(uint64(seed), uint64(seed)^pcgStream))
}

// SeedValue returns the seed the Source was last reset with.
func (s *Source) SeedValue() int64 { return s.seed }

// Float64 returns a general-purpose draw in [0, 1).
func (s *Source) Float64() float64 { return s.general.Float64() }

// NormFloat64 returns a general-purpose standard normal draw.
func (s *Source) NormFloat64() float64 { return s.general.NormFloat64() }

// Intn returns a general-purpose draw in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int { return s.general.Intn(n) }

// Perm returns a pseudo-random permutation of [0, n).
func (s *Source) Perm(n int) []int { return s.general.Perm(n) }

// Shuffle permutes n elements using swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) { s.general.Shuffle(n, swap) }

// Uniform returns n numeric draws from U[lo, hi).
func (s *Source) Uniform(n int, lo, hi float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.numeric.Float64()
	}
	vecmath.ScaleBlock(out, out, hi-lo)
	if lo != 0 {
		for i := range out {
			out[i] += lo
		}
	}
	return out
}

// Normal returns n numeric draws from N(mean, std^2).
func (s *Source) Normal(n int, mean, std float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.numeric.NormFloat64()
	}
	vecmath.ScaleBlock(out, out, std)
	if mean != 0 {
		for i := range out {
			out[i] += mean
		}
	}
	return out
}

// Choice returns k indices drawn from [0, n) with replacement.
// It returns nil if n or k is not positive.
func (s *Source) Choice(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	out := make([]int, k)
	for i := range out {
		out[i] = s.numeric.IntN(n)
	}
	return out
}

var (
	mu     sync.Mutex
	shared = New(0)
)

// SetSeed reseeds the package-level general-purpose and numeric generators
// with the same seed.
func SetSeed(seed int64) {
	mu.Lock()
	shared.Seed(seed)
	mu.Unlock()
}

// Seed returns the seed last passed to [SetSeed].
func Seed() int64 {
	mu.Lock()
	defer mu.Unlock()
	return shared.SeedValue()
}

// Float64 returns a draw in [0, 1) from the package-level general generator.
func Float64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return shared.Float64()
}

// NormFloat64 returns a standard normal draw from the package-level general generator.
func NormFloat64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return shared.NormFloat64()
}

// Intn returns a draw in [0, n) from the package-level general generator.
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return shared.Intn(n)
}

// Perm returns a permutation of [0, n) from the package-level general generator.
func Perm(n int) []int {
	mu.Lock()
	defer mu.Unlock()
	return shared.Perm(n)
}

// Shuffle permutes n elements with the package-level general generator.
// swap must not call back into this package.
func Shuffle(n int, swap func(i, j int)) {
	mu.Lock()
	defer mu.Unlock()
	shared.Shuffle(n, swap)
}

// Uniform returns n draws from U[lo, hi) using the package-level numeric generator.
func Uniform(n int, lo, hi float64) []float64 {
	mu.Lock()
	defer mu.Unlock()
	return shared.Uniform(n, lo, hi)
}

// Normal returns n draws from N(mean, std^2) using the package-level numeric generator.
func Normal(n int, mean, stddev float64) []float64 {
	mu.Lock()
	defer mu.Unlock()
	return shared.Normal(n, mean, stddev)
}

// Choice returns k indices from [0, n), with replacement, using the
// package-level numeric generator.
func Choice(n, k int) []int {
	mu.Lock()
	defer mu.Unlock()
	return shared.Choice(n, k)
}

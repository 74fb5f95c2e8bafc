package testutil

import (
	"math"

	"github.com/cwbudde/algo-notebook/random"
)

// MultiTone sums sines at freqsHz with the given amplitudes.
// Missing amplitudes default to 1.
func MultiTone(freqsHz, amps []float64, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	for k, f := range freqsHz {
		a := 1.0
		if k < len(amps) {
			a = amps[k]
		}
		step := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += a * math.Sin(step*float64(i))
		}
	}
	return out
}

// NoisyEnsemble returns trials copies of signal with independent Gaussian
// noise drawn from a Source seeded with seed.
func NoisyEnsemble(signal []float64, trials int, noiseStd float64, seed int64) [][]float64 {
	src := random.New(seed)
	out := make([][]float64, trials)
	for t := range out {
		noise := src.Normal(len(signal), 0, noiseStd)
		trial := make([]float64, len(signal))
		for i, v := range signal {
			trial[i] = v + noise[i]
		}
		out[t] = trial
	}
	return out
}

// RandomTriple returns value, std and CI sequences of length n. Values are
// uniform in [lo, hi); std and CI are small non-negative fractions of them.
func RandomTriple(src *random.Source, n int, lo, hi float64) (value, std, ci []float64) {
	value = src.Uniform(n, lo, hi)
	std = make([]float64, n)
	ci = make([]float64, n)
	for i, v := range value {
		std[i] = math.Abs(v) * 0.05
		ci[i] = 1.96 * std[i]
	}
	return value, std, ci
}

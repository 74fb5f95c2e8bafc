// Package estimate builds spectrum records from ensembles of real signals.
//
// Each trial is windowed (Hann by default) and transformed with an FFT. Per bin, the
// power-weighted centroid frequency and the bin's share of total power are
// averaged over the ensemble; their spread gives the standard deviation and a
// seeded percentile bootstrap gives the confidence bound.
package estimate

import (
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-notebook/random"
	"github.com/cwbudde/algo-notebook/spectrum"
	"github.com/cwbudde/algo-notebook/window"
	"github.com/cwbudde/algo-vecmath"
)

// Option configures ensemble estimation.
type Option func(*config)

type config struct {
	seed       int64
	resamples  int
	confidence float64
	window     window.Type
}

func defaultConfig() config {
	return config{
		resamples:  1000,
		confidence: 0.95,
		window:     window.TypeHann,
	}
}

// WithSeed sets the seed of the bootstrap resampler.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithResamples sets the number of bootstrap resamples. Values below 1 are ignored.
func WithResamples(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.resamples = n
		}
	}
}

// WithConfidence sets the bootstrap confidence level. Values outside (0, 1)
// are ignored.
func WithConfidence(level float64) Option {
	return func(c *config) {
		if level > 0 && level < 1 {
			c.confidence = level
		}
	}
}

// WithWindow selects the taper applied to each trial before the FFT.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// FromEnsemble estimates a spectrum record from equally long trials sampled
// at sampleRate. The record has one entry per one-sided FFT bin.
//
// Confidence values are half-widths of the bootstrap interval of the mean.
// A single trial yields zero std and CI.
func FromEnsemble(trials [][]float64, sampleRate float64, opts ...Option) (spectrum.Record, error) {
	if len(trials) == 0 {
		return nil, fmt.Errorf("estimate: ensemble must contain at least 1 trial")
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("estimate: sample rate must be > 0: %v", sampleRate)
	}
	n := len(trials[0])
	if n < 2 {
		return nil, fmt.Errorf("estimate: trial length must be >= 2: %d", n)
	}
	for t, tr := range trials {
		if len(tr) != n {
			return nil, fmt.Errorf("estimate: trial %d has length %d, want %d", t, len(tr), n)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a, err := newAnalyzer(n, sampleRate, cfg.window)
	if err != nil {
		return nil, err
	}

	freqs := make([][]float64, len(trials))
	contribs := make([][]float64, len(trials))
	for t, tr := range trials {
		freqs[t], contribs[t], err = a.analyze(tr)
		if err != nil {
			return nil, fmt.Errorf("estimate: trial %d: %w", t, err)
		}
	}

	boot := bootstrapIndices(random.New(cfg.seed), len(trials), cfg.resamples)

	return spectrum.NewRecord(
		aggregate(freqs, boot, cfg.confidence),
		aggregate(contribs, boot, cfg.confidence),
	), nil
}

// analyzer holds per-length FFT state shared by all trials.
type analyzer struct {
	plan     *algofft.Plan[complex128]
	coeffs   []float64
	frame    []float64
	binHz    float64
	in, out  []complex128
	re, im   []float64
	power    []float64
	binFreqs []float64
}

func newAnalyzer(n int, sampleRate float64, win window.Type) (*analyzer, error) {
	fftSize := nextPowerOf2(n)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("estimate: fft plan: %w", err)
	}

	bins := fftSize/2 + 1
	a := &analyzer{
		plan:     plan,
		coeffs:   window.Generate(win, n),
		frame:    make([]float64, n),
		binHz:    sampleRate / float64(fftSize),
		in:       make([]complex128, fftSize),
		out:      make([]complex128, fftSize),
		re:       make([]float64, bins),
		im:       make([]float64, bins),
		power:    make([]float64, bins),
		binFreqs: make([]float64, bins),
	}
	for k := range a.binFreqs {
		a.binFreqs[k] = float64(k) * a.binHz
	}
	return a, nil
}

// analyze returns the per-bin centroid frequency and power share of signal.
func (a *analyzer) analyze(signal []float64) (freq, contrib []float64, err error) {
	copy(a.frame, signal)
	if err := window.ApplyCoefficientsInPlace(a.frame, a.coeffs); err != nil {
		return nil, nil, err
	}

	for i := range a.in {
		a.in[i] = 0
	}
	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, nil, err
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Power(a.power, a.re, a.im)

	total := 0.0
	for _, p := range a.power {
		total += p
	}

	contrib = make([]float64, len(a.power))
	if total > 0 {
		vecmath.ScaleBlock(contrib, a.power, 1/total)
	}

	freq = make([]float64, len(a.power))
	last := len(a.power) - 1
	for k := range freq {
		lo, hi := max(k-1, 0), min(k+1, last)
		w, wf := 0.0, 0.0
		for j := lo; j <= hi; j++ {
			w += a.power[j]
			wf += a.power[j] * a.binFreqs[j]
		}
		if w > 0 {
			freq[k] = wf / w
		} else {
			freq[k] = a.binFreqs[k]
		}
	}
	return freq, contrib, nil
}

// aggregate reduces per-trial rows to mean, sample std and bootstrap CI per bin.
func aggregate(rows [][]float64, boot [][]int, confidence float64) spectrum.Measurement {
	trials := len(rows)
	bins := len(rows[0])
	m := spectrum.Measurement{
		Value: make([]float64, bins),
		Std:   make([]float64, bins),
		CI:    make([]float64, bins),
	}

	column := make([]float64, trials)
	means := make([]float64, len(boot))
	for k := range bins {
		for t := range rows {
			column[t] = rows[t][k]
		}
		mean, std := meanStd(column)
		m.Value[k] = mean
		m.Std[k] = std

		if trials < 2 || len(boot) == 0 {
			continue
		}
		for r, idx := range boot {
			s := 0.0
			for _, t := range idx {
				s += column[t]
			}
			means[r] = s / float64(len(idx))
		}
		sort.Float64s(means)
		alpha := (1 - confidence) / 2
		m.CI[k] = (quantile(means, 1-alpha) - quantile(means, alpha)) / 2
	}
	return m
}

// bootstrapIndices draws resamples sets of trial indices with replacement.
// The same sets are applied to every bin so both fields stay paired.
func bootstrapIndices(src *random.Source, trials, resamples int) [][]int {
	if trials < 2 {
		return nil
	}
	out := make([][]int, resamples)
	for r := range out {
		out[r] = src.Choice(trials, trials)
	}
	return out
}

func meanStd(x []float64) (mean, std float64) {
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	if len(x) < 2 {
		return mean, 0
	}
	ss := 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(x)-1))
}

// quantile returns the linearly interpolated q-quantile of sorted data.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	i := int(math.Floor(pos))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

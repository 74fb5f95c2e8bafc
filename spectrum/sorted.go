package spectrum

import (
	"cmp"
	"slices"
)

// Result holds the filtered entries of a record, ordered by ascending
// frequency. Both measurements share one index.
type Result struct {
	Frequency            Measurement
	IntegralContribution Measurement
}

// Len returns the number of entries that passed the filter.
func (r Result) Len() int { return r.Frequency.Len() }

// Values returns the six sequences in fixed order: frequency value, std and
// CI, then integral-contribution value, std and CI.
func (r Result) Values() (f, fStd, fCI, i, iStd, iCI []float64) {
	return r.Frequency.Value, r.Frequency.Std, r.Frequency.CI,
		r.IntegralContribution.Value, r.IntegralContribution.Std, r.IntegralContribution.CI
}

// Mask returns the elementwise selection
//
//	frequency.value[k] >= fMin && integral_contribution.value[k] >= iMin
//
// NaN values never pass. The record must be valid.
func Mask(rec Record, fMin, iMin float64) []bool {
	f := rec.Frequency().Value
	c := rec.IntegralContribution().Value
	mask := make([]bool, len(f))
	for k := range f {
		mask[k] = f[k] >= fMin && c[k] >= iMin
	}
	return mask
}

// Sorted filters rec by the minimum thresholds and returns the surviving
// entries sorted by ascending frequency value. Entries with equal frequency
// keep their original relative order.
func Sorted(rec Record, fMin, iMin float64) (Result, error) {
	if err := rec.Validate(); err != nil {
		return Result{}, err
	}

	mask := Mask(rec, fMin, iMin)
	f := rec.Frequency().Value

	idx := make([]int, 0, len(mask))
	for k, ok := range mask {
		if ok {
			idx = append(idx, k)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(f[a], f[b])
	})

	return Result{
		Frequency:            rec.Frequency().gather(idx),
		IntegralContribution: rec.IntegralContribution().gather(idx),
	}, nil
}

// Option configures threshold filtering in [LoadSorted].
type Option func(*config)

type config struct {
	fMin float64
	iMin float64
}

func defaultConfig() config {
	return config{}
}

// WithFrequencyMin drops entries whose frequency value is below v.
func WithFrequencyMin(v float64) Option {
	return func(c *config) {
		c.fMin = v
	}
}

// WithContributionMin drops entries whose integral-contribution value is below v.
func WithContributionMin(v float64) Option {
	return func(c *config) {
		c.iMin = v
	}
}

// LoadSorted reads the record at path and returns its entries filtered by
// the configured minimums (zero by default) and sorted by frequency.
func LoadSorted(path string, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rec, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	return Sorted(rec, cfg.fMin, cfg.iMin)
}

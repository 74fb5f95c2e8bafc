package spectrum

import (
	"fmt"
	"slices"
	"sort"
)

// Field names every record must carry.
const (
	FieldFrequency            = "frequency"
	FieldIntegralContribution = "integral_contribution"
)

// Measurement is a triple of equal-length sequences describing one quantity.
// CI holds a precomputed confidence bound per entry and is passed through
// filtering and sorting unchanged.
type Measurement struct {
	Value []float64
	Std   []float64
	CI    []float64
}

// Len returns the length of Value.
func (m Measurement) Len() int { return len(m.Value) }

// Validate reports whether Std and CI have the same length as Value.
func (m Measurement) Validate() error {
	n := len(m.Value)
	if len(m.Std) != n || len(m.CI) != n {
		return fmt.Errorf("%w: value=%d std=%d ci=%d", ErrLengthMismatch, n, len(m.Std), len(m.CI))
	}
	return nil
}

// Clone returns a deep copy of m.
func (m Measurement) Clone() Measurement {
	return Measurement{
		Value: slices.Clone(m.Value),
		Std:   slices.Clone(m.Std),
		CI:    slices.Clone(m.CI),
	}
}

// gather returns a new Measurement holding the entries at idx, in order.
func (m Measurement) gather(idx []int) Measurement {
	out := Measurement{
		Value: make([]float64, len(idx)),
		Std:   make([]float64, len(idx)),
		CI:    make([]float64, len(idx)),
	}
	for i, k := range idx {
		out.Value[i] = m.Value[k]
		out.Std[i] = m.Std[k]
		out.CI[i] = m.CI[k]
	}
	return out
}

// Record maps field names to measurements.
type Record map[string]Measurement

// NewRecord returns a record with the two required fields set.
func NewRecord(frequency, contribution Measurement) Record {
	return Record{
		FieldFrequency:            frequency,
		FieldIntegralContribution: contribution,
	}
}

// Frequency returns the frequency measurement.
func (r Record) Frequency() Measurement { return r[FieldFrequency] }

// IntegralContribution returns the integral-contribution measurement.
func (r Record) IntegralContribution() Measurement { return r[FieldIntegralContribution] }

// Fields returns the record's field names in sorted order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the shared entry count of the required fields.
// It is only meaningful for a record that passes [Record.Validate].
func (r Record) Len() int { return r.Frequency().Len() }

// Validate checks that both required fields are present and that their six
// sequences share one length. Extra fields are carried as-is and not checked.
func (r Record) Validate() error {
	for _, name := range []string{FieldFrequency, FieldIntegralContribution} {
		m, ok := r[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingField, name)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	if f, c := r.Frequency().Len(), r.IntegralContribution().Len(); f != c {
		return fmt.Errorf("%w: %s=%d %s=%d", ErrLengthMismatch, FieldFrequency, f, FieldIntegralContribution, c)
	}
	return nil
}

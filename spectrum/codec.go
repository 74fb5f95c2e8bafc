package spectrum

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies an on-disk encoding of a record.
type Format int

const (
	// FormatNative is the compact binary encoding (MessagePack).
	FormatNative Format = iota
	// FormatJSON writes non-finite values as the strings "NaN", "+Inf"
	// and "-Inf".
	FormatJSON
	FormatYAML
	FormatTOML
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var formatNames = map[Format]string{
	FormatNative: "native",
	FormatJSON:   "json",
	FormatYAML:   "yaml",
	FormatTOML:   "toml",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format by name. Accepted names are "native",
// "msgpack", "json", "yaml", "yml" and "toml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "native", "msgpack", "spec":
		return FormatNative, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from the file extension. Extensions that
// name no text format map to [FormatNative].
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return FormatNative
}

// wireRecord is the serialized shape: field name to [value, std, ci].
type wireRecord map[string][][]float64

func toWire(rec Record) wireRecord {
	w := make(wireRecord, len(rec))
	for name, m := range rec {
		w[name] = [][]float64{nonNil(m.Value), nonNil(m.Std), nonNil(m.CI)}
	}
	return w
}

// toJSONWire replaces non-finite values with the strings "NaN", "+Inf"
// and "-Inf", which JSON cannot carry as numbers.
func toJSONWire(rec Record) map[string][3][]any {
	w := make(map[string][3][]any, len(rec))
	for name, m := range rec {
		w[name] = [3][]any{jsonValues(m.Value), jsonValues(m.Std), jsonValues(m.CI)}
	}
	return w
}

func jsonValues(s []float64) []any {
	out := make([]any, len(s))
	for i, v := range s {
		switch {
		case math.IsNaN(v):
			out[i] = "NaN"
		case math.IsInf(v, 1):
			out[i] = "+Inf"
		case math.IsInf(v, -1):
			out[i] = "-Inf"
		default:
			out[i] = v
		}
	}
	return out
}

// fromWire builds a record from a generically decoded document. The
// required fields must be well-formed triples; other fields are kept when
// they are triples and skipped otherwise.
func fromWire(doc map[string]any) (Record, error) {
	rec := make(Record, len(doc))
	for name, raw := range doc {
		m, err := toMeasurement(raw)
		if err != nil {
			if name == FieldFrequency || name == FieldIntegralContribution {
				return nil, fmt.Errorf("%w: field %q: %v", ErrMalformed, name, err)
			}
			continue
		}
		rec[name] = m
	}
	return rec, nil
}

func toMeasurement(raw any) (Measurement, error) {
	seqs, ok := raw.([]any)
	if !ok {
		return Measurement{}, fmt.Errorf("got %T, want a list of 3 sequences", raw)
	}
	if len(seqs) != 3 {
		return Measurement{}, fmt.Errorf("has %d sequences, want 3", len(seqs))
	}

	var out [3][]float64
	for i, seq := range seqs {
		vals, ok := seq.([]any)
		if !ok {
			return Measurement{}, fmt.Errorf("sequence %d: got %T, want a list", i, seq)
		}
		out[i] = make([]float64, len(vals))
		for k, v := range vals {
			f, err := toFloat(v)
			if err != nil {
				return Measurement{}, fmt.Errorf("sequence %d element %d: %w", i, k, err)
			}
			out[i][k] = f
		}
	}
	return Measurement{Value: out[0], Std: out[1], CI: out[2]}, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		switch x {
		case "NaN":
			return math.NaN(), nil
		case "Inf", "+Inf":
			return math.Inf(1), nil
		case "-Inf":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("non-numeric value %q", x)
	}
	return 0, fmt.Errorf("non-numeric value of type %T", v)
}

func nonNil(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}

// Encode writes rec to w in the given format. JSON has no literal for
// non-finite numbers, so [FormatJSON] writes NaN and ±Inf as the strings
// "NaN", "+Inf" and "-Inf"; [Decode] reads them back.
func Encode(w io.Writer, rec Record, format Format) error {
	var err error
	switch format {
	case FormatNative:
		err = msgpack.NewEncoder(w).Encode(toWire(rec))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(toJSONWire(rec))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(toWire(rec)); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(toWire(rec))
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s spectrum: %w", format, err)
	}
	return nil
}

// Decode reads a record in the given format from r. Fields other than
// frequency and integral_contribution that are not triples are dropped.
// The result is not validated; see [Record.Validate].
func Decode(r io.Reader, format Format) (Record, error) {
	var doc map[string]any

	var err error
	switch format {
	case FormatNative:
		err = msgpack.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s spectrum: %w", format, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty %s document", ErrMalformed, format)
	}
	return fromWire(doc)
}

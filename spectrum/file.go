package spectrum

import (
	"bufio"
	"fmt"
	"os"
)

// Load reads and validates the record stored at path. The format follows
// the file extension (see [FormatFromPath]).
func Load(path string) (Record, error) {
	return LoadFormat(path, FormatFromPath(path))
}

// LoadFormat reads and validates the record at path using an explicit format.
func LoadFormat(path string, format Format) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load spectrum: %w", err)
	}
	defer f.Close()

	rec, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("load spectrum %s: %w", path, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("load spectrum %s: %w", path, err)
	}
	return rec, nil
}

// Save writes rec to path, choosing the format from the file extension.
func Save(path string, rec Record) error {
	return SaveFormat(path, rec, FormatFromPath(path))
}

// SaveFormat validates rec and writes it to path in the given format.
func SaveFormat(path string, rec Record, format Format) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("save spectrum: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save spectrum: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, rec, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("save spectrum %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("save spectrum %s: %w", path, err)
	}
	return f.Close()
}

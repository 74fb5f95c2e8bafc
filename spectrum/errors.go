package spectrum

import "errors"

var (
	// ErrMissingField reports a record without a required field.
	ErrMissingField = errors.New("spectrum: missing field")

	// ErrLengthMismatch reports sequences that cannot share one index.
	ErrLengthMismatch = errors.New("spectrum: sequence length mismatch")

	// ErrUnknownFormat reports an unsupported serialization format.
	ErrUnknownFormat = errors.New("spectrum: unknown format")

	// ErrMalformed reports decoded data that does not have the triple shape.
	ErrMalformed = errors.New("spectrum: malformed record")
)

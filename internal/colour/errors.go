package colour

import "errors"

// Error kinds returned by the adapter, the engine and the extractor.
// Failures wrap one of these, so callers match them with errors.Is.
var (
	ErrInvalidBufferLength = errors.New("invalid buffer length")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrInvalidK            = errors.New("invalid k")
	ErrEmptyInput          = errors.New("empty input")
	ErrInvalidConfig       = errors.New("invalid config")
)

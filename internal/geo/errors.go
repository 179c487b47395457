package geo

import "errors"

// Error kinds shared by both tools. Callers wrap these with %w and
// classify with errors.Is.
var (
	ErrInputNotFound        = errors.New("input not found")
	ErrMalformedInput       = errors.New("malformed input")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
)

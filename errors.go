package frange

import "errors"

// Common errors returned by constructors and accessors in this package.
// Returned errors wrap these, so match with errors.Is.
var (
	ErrZeroStep       = errors.New("frange: range step cannot be zero")
	ErrNegativeLen    = errors.New("frange: range length cannot be negative")
	ErrLenOverflow    = errors.New("frange: range length exceeds representable bound")
	ErrNotFinite      = errors.New("frange: range parameters must be finite")
	ErrBoundsMismatch = errors.New("frange: start and stop must be equal for a length-1 range")
	ErrIndexRange     = errors.New("frange: index out of range")
)

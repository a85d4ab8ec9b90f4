package costtable

import "errors"

// Sentinel errors for Build.
var (
	// ErrWorldNil is returned when the world argument is nil.
	ErrWorldNil = errors.New("costtable: world is nil")

	// ErrSourceOutOfBounds is returned when the source cell lies outside
	// the world's grid.
	ErrSourceOutOfBounds = errors.New("costtable: source cell is out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("costtable: invalid option supplied")
)

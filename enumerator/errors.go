package enumerator

import "errors"

// Sentinel errors returned by the enumerator package.
var (
	// ErrInvalidArgument indicates an unusable Enumerator configuration:
	// beginVolume > endVolume, a nil unit lattice, or an empty point
	// group.
	ErrInvalidArgument = errors.New("enumerator: invalid argument")

	// ErrExhausted indicates a dereference of an iterator that has reached
	// its end volume and carries no current matrix.
	ErrExhausted = errors.New("enumerator: iterator exhausted")
)

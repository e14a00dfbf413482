package lattice

import "errors"

// Sentinel errors returned by the lattice reference implementations.
var (
	// ErrSingular indicates a zero-determinant matrix where an invertible
	// one is required: a degenerate lattice basis, or an integer matrix
	// passed to HNF/CanonicalHNF that does not describe a sublattice.
	ErrSingular = errors.New("lattice: singular matrix")

	// ErrBadTolerance indicates that DerivePointGroup was called with a
	// tolerance <= 0, which would reject every candidate operation
	// including the identity.
	ErrBadTolerance = errors.New("lattice: tolerance must be positive")

	// ErrEmptyGroup indicates a point group with no operations; every
	// valid point group contains at least the identity.
	ErrEmptyGroup = errors.New("lattice: empty point group")
)

// Package hermite: sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; never stringly-typed errors.
//   - Callers branch with errors.Is(err, ErrX).
//   - Sentinels are never reformatted at definition site; context is added
//     with fmt.Errorf("%w", ...) or errors.Wrapf at constructor boundaries.

package hermite

import "errors"

// ErrInvalidArgument is returned by New/NewAt when the requested
// determinant range or dimension is out of bounds: dLow < 1, dHigh <
// dLow, or n < 1.
var ErrInvalidArgument = errors.New("hermite: invalid argument")

// ErrDimensionMismatch is returned by Zip/ExpandDims when a diagonal
// vector, upper-triangle vector, or active mask does not match the
// dimension it is being combined with.
var ErrDimensionMismatch = errors.New("hermite: dimension mismatch")

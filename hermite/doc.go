// Package hermite enumerates Hermite Normal Form (HNF) matrices: upper
// triangular, integer, with a fixed determinant and each above-diagonal
// entry bounded by its row's diagonal value.
//
// Counter walks a determinant range [dLow, dHigh] in n dimensions. For
// each determinant it first walks every ordered factorization of the
// determinant into n diagonal entries (the "factor-spilling" walk), and
// for each diagonal it sweeps every legal combination of above-diagonal
// entries in little-endian mixed-radix order.
//
// This package has no notion of symmetry or supercells; see the
// enumerator package for the 3×3 symmetry-unique walk built on the same
// HNF shape (though not on top of Counter itself).
package hermite

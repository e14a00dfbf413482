// Package lattice provides the geometric collaborators the supercell
// enumerator consumes: real 3×3 lattices, finite point groups, Hermite
// Normal Form decomposition, and supercell construction.
//
// Overview:
//
//   - Lattice and PointGroup are small interfaces; the enumerator package
//     depends only on them, never on the concrete types here, so callers
//     with their own crystallography stack can plug it in directly.
//   - RealLattice and SlicePointGroup are the reference implementations,
//     enough to drive the full pipeline end-to-end.
//   - HNF decomposes any non-singular 3×3 integer matrix into its unique
//     upper-triangular Hermite Normal Form via unimodular column
//     operations.
//   - DerivePointGroup recovers a lattice's point group by brute force
//     over the bounded integer representations every 3D Bravais-lattice
//     symmetry admits.
//
// Key entry points:
//
//   - Identity() / NewRealLattice(cols): build a lattice from column vectors.
//   - Cubic() / Trivial() / DerivePointGroup(lat, tol): obtain a point group.
//   - HNF(m): Hermite Normal Form with its unimodular witness, m·V = H.
//   - MakeSupercell(unit, m): the sublattice with columns U·m.
//   - CanonicalHNF(t, unit, group): minimal orbit representative of a
//     single transformation matrix.
//
// Error handling (sentinel errors):
//
//   - ErrSingular     if a lattice or integer matrix has zero determinant.
//   - ErrBadTolerance if DerivePointGroup is given a non-positive tolerance.
//   - ErrEmptyGroup   if CanonicalHNF is given a group with no operations.
package lattice

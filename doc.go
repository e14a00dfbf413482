// Package supercell is your toolkit for enumerating symmetrically unique
// supercells of a crystallographic unit cell: from a general-dimension
// Hermite Normal Form counter up through a 3×3 symmetry-unique walk.
//
// 🚀 What is supercell?
//
//	A focused, zero-surprise library that brings together:
//		• Hermite Normal Form enumeration: every upper-triangular integer
//		  matrix of a given determinant, in any dimension
//		• Symmetry filtering: one representative per point-group orbit
//		  of 3×3 supercell transformations
//		• Reference lattice math: 3×3 inversion, HNF decomposition, and a
//		  bounded point-group finder, so the pipeline runs end-to-end
//
// ✨ Why choose supercell?
//
//   - Deterministic – the same volume range always yields the same
//     sequence of matrices, in the same order
//   - Pure Go – no cgo, minimal hidden deps
//   - Extensible – swap in your own Lattice/PointGroup implementation
//     via the lattice package's interfaces
//
// Under the hood, everything is organized under three subpackages:
//
//	hermite/    general n×n HNF counter, reusable standalone
//	lattice/    Lattice/PointGroup interfaces + reference implementations
//	enumerator/ the 3×3 symmetry-unique walk and its Enumerator façade
//
// Quick example: enumerate the symmetrically unique supercells of a cubic
// unit cell between volume 1 and volume 4 (expect counts 1, 3, 3, 7):
//
//	enum, err := enumerator.New(lattice.Identity(), lattice.Cubic(), 1, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for it := enum.Begin(); !it.Equal(enum.End()); it.Advance() {
//		m, _ := it.Matrix()
//		fmt.Printf("volume %d:\n%s", it.Volume(), m)
//	}
//
// Dive into DESIGN.md for the full design rationale and the provenance
// of every component.
package supercell

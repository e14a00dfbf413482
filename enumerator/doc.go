// Package enumerator walks the symmetrically unique supercells of a 3D
// unit lattice in strictly non-decreasing volume order.
//
// Overview:
//
//   - Enumerator is the façade: it holds the unit lattice, its point
//     group (supplied or derived), and a half-open volume range
//     [beginVolume, endVolume).
//   - UniqueHnfIterator is the walk itself: a forward iterator over
//     (volume, M) pairs where M is a 3×3 integer matrix in Hermite
//     Normal Form with det M = volume, emitting exactly one matrix per
//     point-group orbit: the minimum of its orbit under the
//     lexicographic order on (h00, h11, h22, h12, h02, h01).
//   - EnforceMinVolume answers the inverse question: the smallest
//     canonical transformation that reaches at least a target volume.
//
// The raw walk underneath the iterator is bespoke to the 3×3 case and
// tuned to the canonicality test's comparison order; the general
// n-dimensional enumeration lives in the sibling hermite package.
//
// Iteration protocol (an explicit iterator, since the walk is a resumable
// state machine, not a channel):
//
//	enum, err := enumerator.New(lattice.Identity(), lattice.Cubic(), 1, 5)
//	if err != nil { ... }
//	for it := enum.Begin(); !it.Equal(enum.End()); it.Advance() {
//		m, _ := it.Matrix()
//		fmt.Println(it.Volume(), m)
//	}
//
// Concurrency: a single iterator must not be shared between goroutines.
// Separate iterators derived from the same Enumerator are fully
// independent; EnumerateVolumesConcurrently exploits exactly that to fan
// one iterator out per volume.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidArgument if beginVolume > endVolume, the lattice is nil,
//     or the supplied point group is empty. A failure to derive the
//     point group returns the lattice package's error instead (for
//     example lattice.ErrBadTolerance).
//   - ErrExhausted if Matrix or Supercell is called on an iterator that
//     has reached endVolume.
package enumerator

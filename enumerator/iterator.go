package enumerator

import (
	"fmt"

	"github.com/solidnomad/supercell/lattice"
)

// UniqueHnfIterator is a forward iterator over the symmetry-unique
// supercell transformations of its Enumerator's unit lattice: (volume,
// M) pairs with M a 3×3 HNF, det M = volume, and M the minimum of its
// point-group orbit under the (h00, h11, h22, h12, h02, h01) order.
//
// Volume is non-decreasing across Advance calls. Within one volume the
// emissions are the canonical subsequence of the raw walk order below.
//
// An iterator is a value-ish state machine: cheap, single-goroutine,
// and independent of every other iterator from the same Enumerator.
type UniqueHnfIterator struct {
	enum *Enumerator
	vol  int
	m    lattice.IntMatrix
	div  *divisorCache

	// Lazily materialized supercell for the current position, rebuilt on
	// first access after every Advance. Equality never looks at it.
	dirty bool
	cell  *lattice.Supercell
}

func diag(a, b, c int) lattice.IntMatrix {
	return lattice.IntMatrix{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Volume returns the determinant of the current matrix, or the end
// volume once the iterator is exhausted.
func (it *UniqueHnfIterator) Volume() int { return it.vol }

// Done reports whether the iterator has reached its end volume.
func (it *UniqueHnfIterator) Done() bool { return it.vol >= it.enum.end }

// Matrix returns the current canonical transformation, or ErrExhausted
// once the iterator has reached its end volume.
func (it *UniqueHnfIterator) Matrix() (lattice.IntMatrix, error) {
	if it.Done() {
		return lattice.IntMatrix{}, fmt.Errorf("Matrix at volume %d: %w", it.vol, ErrExhausted)
	}

	return it.m, nil
}

// Supercell materializes the supercell U·M for the current position.
// The result is cached until the next Advance, so repeated dereference
// is free.
func (it *UniqueHnfIterator) Supercell() (*lattice.Supercell, error) {
	if it.Done() {
		return nil, fmt.Errorf("Supercell at volume %d: %w", it.vol, ErrExhausted)
	}
	if it.dirty {
		cell, err := lattice.MakeSupercell(it.enum.unit, it.m)
		if err != nil {
			return nil, err
		}
		it.cell = cell
		it.dirty = false
	}

	return it.cell, nil
}

// Equal reports whether two iterators reference the same Enumerator and
// carry identical (volume, matrix) state. The supercell cache does not
// participate.
func (it *UniqueHnfIterator) Equal(other *UniqueHnfIterator) bool {
	return it.enum == other.enum && it.vol == other.vol && it.m == other.m
}

// Advance moves to the next canonical matrix, crossing into higher
// volumes as each volume's raw walk is exhausted. Once the end volume
// is reached the iterator equals the Enumerator's End sentinel and
// further calls are no-ops.
func (it *UniqueHnfIterator) Advance() {
	if it.Done() {
		return
	}

	it.dirty = true
	it.cell = nil
	for it.rawStep() {
		it.enum.metrics.RawStep()
		if it.canonical() {
			it.enum.metrics.Emitted(it.vol)
			return
		}
		it.enum.metrics.Rejected()
	}
}

// rawStep performs one step of the bespoke 3×3 HNF walk and reports
// whether the iterator still holds a live candidate. The order is tuned
// to the canonicality comparison: the fastest-varying slot is M12, then
// M02, then M01, then the diagonal moves (M11 ascends through the
// divisors of v/M00, then M00 ascends through the divisors of v), and
// finally the volume itself increments with the walk reset to
// diag(1,1,v). Reaching the end volume returns false with the iterator
// parked on the End sentinel state.
func (it *UniqueHnfIterator) rawStep() bool {
	m := &it.m

	if m[1][2]+1 < m[1][1] {
		m[1][2]++
		return true
	}
	m[1][2] = 0

	if m[0][2]+1 < m[0][0] {
		m[0][2]++
		return true
	}
	m[0][2] = 0

	if m[0][1]+1 < m[0][0] {
		m[0][1]++
		return true
	}
	m[0][1] = 0

	quot := it.vol / m[0][0]
	if d, ok := it.div.next(quot, m[1][1]); ok {
		m[1][1] = d
		m[2][2] = quot / d
		return true
	}
	m[1][1] = 1

	if d, ok := it.div.next(it.vol, m[0][0]); ok {
		m[0][0] = d
		m[2][2] = it.vol / d
		return true
	}

	it.vol++
	it.m = diag(1, 1, it.vol)

	return it.vol < it.enum.end
}

// canonical reports whether the current matrix is the minimum of its
// orbit: no group operation maps it to a lexicographically smaller HNF.
func (it *UniqueHnfIterator) canonical() bool {
	for _, op := range it.enum.ops {
		h, _, err := lattice.HNF(op.Mul(it.m))
		if err != nil {
			// ops have det ±1 and the walk only holds non-singular
			// candidates, so a singular product cannot occur.
			panic(err)
		}
		if lattice.HNFLess(h, it.m) {
			return false
		}
	}

	return true
}

package enumerator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/solidnomad/supercell/lattice"
)

// EnforceMinVolume returns an integer matrix M such that det(T·M) >= v
// and T·M describes a symmetry-canonical supercell of unit under the
// point group.
//
// With fixShape set, M is constrained to k·I for the smallest integer k
// with k³·|det T| >= v. Otherwise the symmetry-unique walk of unit is
// driven from the T-relative volume ⌈v / |det T|⌉ upward and the first
// emission whose product T·M is its own canonical representative is
// returned; for T = I that is the very first emission.
func EnforceMinVolume(unit lattice.Lattice, t lattice.IntMatrix, group lattice.PointGroup, v int, fixShape bool) (lattice.IntMatrix, error) {
	detT := t.Det()
	if detT == 0 {
		return lattice.IntMatrix{}, errors.Wrap(lattice.ErrSingular, "enumerator.EnforceMinVolume: T")
	}
	if detT < 0 {
		detT = -detT
	}

	if fixShape {
		k := 1
		for k*k*k*detT < v {
			k++
		}
		return lattice.ScaledIdentity(k), nil
	}

	target := (v + detT - 1) / detT
	if target < 1 {
		target = 1
	}

	// The walk is unbounded above: some volume always carries a matching
	// canonical product, so termination is by emission, never by range.
	en, err := New(unit, group, target, math.MaxInt32)
	if err != nil {
		return lattice.IntMatrix{}, errors.Wrap(err, "enumerator.EnforceMinVolume")
	}

	for it := en.Begin(); !it.Done(); it.Advance() {
		m, err := it.Matrix()
		if err != nil {
			return lattice.IntMatrix{}, err
		}
		if t.IsIdentity() {
			return m, nil
		}

		product := t.Mul(m)
		h, _, err := lattice.HNF(product)
		if err != nil {
			return lattice.IntMatrix{}, err
		}
		canon, _, err := lattice.CanonicalHNF(product, unit, group)
		if err != nil {
			return lattice.IntMatrix{}, err
		}
		if h == canon {
			return m, nil
		}
	}

	return lattice.IntMatrix{}, errors.Wrapf(ErrExhausted, "enumerator.EnforceMinVolume: no canonical supercell at volume >= %d", target)
}

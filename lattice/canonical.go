package lattice

import "fmt"

// IntegerReps conjugates every operation of a point group into the basis
// of the given lattice and rounds to the exact integer representation
// round(U⁻¹·g·U). The caller is responsible for supplying a group that
// genuinely preserves the lattice; a too-loose tolerance upstream makes
// the rounding silently wrong.
func IntegerReps(unit Lattice, group PointGroup) ([]IntMatrix, error) {
	u := unit.ColumnMatrix()
	uInv, err := u.Inverse()
	if err != nil {
		return nil, err
	}

	reps := make([]IntMatrix, group.Size())
	for k := 0; k < group.Size(); k++ {
		reps[k] = uInv.Mul(group.At(k)).Mul(u).Round()
	}
	return reps, nil
}

// CanonicalHNF returns the canonical representative of t's orbit under
// the point group acting on the unit lattice: the minimum, in the
// HNFLess order, of hnf(round(U⁻¹·g·U)·t) over every g in the group. The
// second return is the index of the operation that produced it.
func CanonicalHNF(t IntMatrix, unit Lattice, group PointGroup) (IntMatrix, int, error) {
	if t.Det() == 0 {
		return IntMatrix{}, 0, fmt.Errorf("lattice: CanonicalHNF: %w", ErrSingular)
	}
	if group.Size() == 0 {
		return IntMatrix{}, 0, fmt.Errorf("lattice: CanonicalHNF: %w", ErrEmptyGroup)
	}

	reps, err := IntegerReps(unit, group)
	if err != nil {
		return IntMatrix{}, 0, err
	}

	var best IntMatrix
	bestOp := -1
	for k, r := range reps {
		h, _, err := HNF(r.Mul(t))
		if err != nil {
			return IntMatrix{}, 0, fmt.Errorf("lattice: CanonicalHNF: operation %d does not preserve the lattice: %w", k, err)
		}
		if bestOp < 0 || HNFLess(h, best) {
			best = h
			bestOp = k
		}
	}
	return best, bestOp, nil
}

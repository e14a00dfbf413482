package lattice

import "fmt"

// PointGroup is a finite, indexable collection of Cartesian point
// symmetry operations: real orthogonal 3×3 matrices mapping the lattice
// onto itself.
type PointGroup interface {
	// Size returns the number of operations in the group.
	Size() int
	// At returns the i-th operation. Implementations must return the same
	// value for the same index on every call.
	At(i int) RealMatrix
}

// SlicePointGroup is the reference PointGroup implementation: a plain
// slice of operations.
type SlicePointGroup []RealMatrix

// Size returns the number of operations in the group.
func (g SlicePointGroup) Size() int { return len(g) }

// At returns the i-th operation.
func (g SlicePointGroup) At(i int) RealMatrix { return g[i] }

// Trivial returns the point group containing only the identity. Every
// HNF is its own orbit under this group, so an enumerator using it emits
// every HNF of every volume.
func Trivial() SlicePointGroup {
	return SlicePointGroup{IdentityReal()}
}

// Cubic returns the full cubic point group m-3m: the 48 signed
// permutation matrices (6 axis permutations × 8 sign choices).
func Cubic() SlicePointGroup {
	perms := [6][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	g := make(SlicePointGroup, 0, 48)
	for _, p := range perms {
		for signs := 0; signs < 8; signs++ {
			var op RealMatrix
			for row := 0; row < 3; row++ {
				s := 1.0
				if signs&(1<<row) != 0 {
					s = -1.0
				}
				op[row][p[row]] = s
			}
			g = append(g, op)
		}
	}
	return g
}

// DerivePointGroup recovers the point group of a lattice by brute force.
//
// Every point symmetry of a 3D Bravais lattice acts on a primitive basis
// as a unimodular integer matrix, and in the basis the caller supplies
// the entries are assumed bounded by 1 in magnitude (the standard
// situation for primitive crystallographic bases). The search therefore
// walks all 3^9 integer matrices R with entries in {-1, 0, 1} and
// det R = ±1, conjugates each into Cartesian coordinates as U·R·U⁻¹,
// and keeps those within tol of orthogonal.
//
// The tolerance must be positive; too loose a tolerance admits
// operations that do not actually preserve the lattice, which later
// poisons the integer rounding in the canonicality test.
func DerivePointGroup(lat Lattice, tol float64) (SlicePointGroup, error) {
	if tol <= 0 {
		return nil, fmt.Errorf("lattice: DerivePointGroup(tol=%g): %w", tol, ErrBadTolerance)
	}

	u := lat.ColumnMatrix()
	uInv, err := u.Inverse()
	if err != nil {
		return nil, err
	}

	var g SlicePointGroup
	var r IntMatrix
	var walk func(slot int)
	walk = func(slot int) {
		if slot == 9 {
			if d := r.Det(); d != 1 && d != -1 {
				return
			}
			cart := u.Mul(r.Real()).Mul(uInv)
			if cart.isOrthogonal(tol) {
				g = append(g, cart)
			}
			return
		}
		for v := -1; v <= 1; v++ {
			r[slot/3][slot%3] = v
			walk(slot + 1)
		}
	}
	walk(0)

	return g, nil
}

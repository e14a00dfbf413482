package lattice

import (
	"fmt"
	"math"
)

// IntMatrix is a fixed-size 3×3 integer matrix, row-major. It is the
// currency of the supercell transformation pipeline: HNFs, point-group
// integer representations, and supercell transforms are all IntMatrix
// values. Being an array type it copies by value, so walk state never
// aliases.
type IntMatrix [3][3]int

// RealMatrix is a fixed-size 3×3 float64 matrix, row-major. Lattice
// column matrices and Cartesian point-group operations are RealMatrix
// values.
type RealMatrix [3][3]float64

// IdentityInt returns the 3×3 integer identity.
func IdentityInt() IntMatrix {
	return IntMatrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IdentityReal returns the 3×3 real identity.
func IdentityReal() RealMatrix {
	return RealMatrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// ScaledIdentity returns k times the 3×3 integer identity.
func ScaledIdentity(k int) IntMatrix {
	return IntMatrix{{k, 0, 0}, {0, k, 0}, {0, 0, k}}
}

// Mul returns the matrix product m·o.
func (m IntMatrix) Mul(o IntMatrix) IntMatrix {
	var out IntMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += m[i][k] * o[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Det returns the determinant of m by cofactor expansion.
func (m IntMatrix) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsIdentity reports whether m is the identity matrix.
func (m IntMatrix) IsIdentity() bool {
	return m == IdentityInt()
}

// Real converts m to a RealMatrix.
func (m IntMatrix) Real() RealMatrix {
	var out RealMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = float64(m[i][j])
		}
	}
	return out
}

// String renders m row by row.
func (m IntMatrix) String() string {
	return fmt.Sprintf("[%d, %d, %d]\n[%d, %d, %d]\n[%d, %d, %d]\n",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// Mul returns the matrix product m·o.
func (m RealMatrix) Mul(o RealMatrix) RealMatrix {
	var out RealMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += m[i][k] * o[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Det returns the determinant of m by cofactor expansion.
func (m RealMatrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Transpose returns mᵀ.
func (m RealMatrix) Transpose() RealMatrix {
	var out RealMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Inverse returns m⁻¹ via the adjugate, or ErrSingular if det(m) is
// numerically zero.
func (m RealMatrix) Inverse() (RealMatrix, error) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return RealMatrix{}, fmt.Errorf("lattice: cannot invert, |det| = %g: %w", det, ErrSingular)
	}

	var adj RealMatrix
	adj[0][0] = m[1][1]*m[2][2] - m[1][2]*m[2][1]
	adj[0][1] = m[0][2]*m[2][1] - m[0][1]*m[2][2]
	adj[0][2] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	adj[1][0] = m[1][2]*m[2][0] - m[1][0]*m[2][2]
	adj[1][1] = m[0][0]*m[2][2] - m[0][2]*m[2][0]
	adj[1][2] = m[0][2]*m[1][0] - m[0][0]*m[1][2]
	adj[2][0] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	adj[2][1] = m[0][1]*m[2][0] - m[0][0]*m[2][1]
	adj[2][2] = m[0][0]*m[1][1] - m[0][1]*m[1][0]

	var out RealMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = adj[i][j] / det
		}
	}
	return out, nil
}

// Round maps every entry to its nearest integer. Used to recover the
// exact integer representation of a lattice-preserving operation from
// its floating-point conjugation U⁻¹·g·U.
func (m RealMatrix) Round() IntMatrix {
	var out IntMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = int(math.Round(m[i][j]))
		}
	}
	return out
}

// isOrthogonal reports whether m·mᵀ is the identity within tol,
// entrywise.
func (m RealMatrix) isOrthogonal(tol float64) bool {
	p := m.Mul(m.Transpose())
	id := IdentityReal()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(p[i][j]-id[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// HNFLess reports whether a precedes b in the lexicographic order on
// (h00, h11, h22, h12, h02, h01). This is the total order that defines
// the canonical representative of a point-group orbit of HNFs.
func HNFLess(a, b IntMatrix) bool {
	ka := [6]int{a[0][0], a[1][1], a[2][2], a[1][2], a[0][2], a[0][1]}
	kb := [6]int{b[0][0], b[1][1], b[2][2], b[1][2], b[0][2], b[0][1]}
	for i := 0; i < 6; i++ {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}

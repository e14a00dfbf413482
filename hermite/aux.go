package hermite

import "fmt"

// UpperSize returns the number of strictly-upper-triangular slots of an
// n×n matrix: n(n-1)/2.
func UpperSize(n int) int {
	return n * (n - 1) / 2
}

// Zip assembles a diagonal vector and a strictly-upper-triangular vector
// (in the row-major slot order (0,1),(0,2),...,(0,n-1),(1,2),...) into an
// n×n HNF matrix. It is the inverse of (Matrix.Diagonal, Matrix.UpperTriangle).
func Zip(diag, upper []int) (*Matrix, error) {
	n := len(diag)
	if len(upper) != UpperSize(n) {
		return nil, fmt.Errorf("hermite: Zip: upper has %d entries, want %d: %w", len(upper), UpperSize(n), ErrDimensionMismatch)
	}

	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m.Set(i, i, diag[i])
	}
	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, upper[idx])
			idx++
		}
	}
	return m, nil
}

// ExpandDims embeds an m×m HNF into an n×n HNF (m <= n) by placing it on
// the rows/columns selected by activeMask (len(activeMask) == n, with
// exactly m entries true) and filling the remaining diagonal slots with
// 1. It is a pure rearrangement: no matrix multiplication is performed.
func ExpandDims(h *Matrix, activeMask []bool) (*Matrix, error) {
	n := len(activeMask)
	activeIdx := make([]int, 0, h.Dim())
	for i, active := range activeMask {
		if active {
			activeIdx = append(activeIdx, i)
		}
	}
	if len(activeIdx) != h.Dim() {
		return nil, fmt.Errorf("hermite: ExpandDims: mask selects %d dims, h has dim %d: %w", len(activeIdx), h.Dim(), ErrDimensionMismatch)
	}

	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	for hi, gi := range activeIdx {
		for hj, gj := range activeIdx {
			out.Set(gi, gj, h.At(hi, hj))
		}
	}
	return out, nil
}

package hermite

// upperCounter is a bounded, little-endian mixed-radix counter over the
// strictly-upper-triangular slots of an n×n HNF, for a fixed diagonal.
// Slot k (in the row-major order (0,1),(0,2),...,(0,n-1),(1,2),...) has
// base diag[row(k)]: every entry is bounded by its row's diagonal.
type upperCounter struct {
	bases  []int
	digits []int
}

// newUpperCounter builds a fresh, zeroed counter for the given diagonal.
func newUpperCounter(diag []int) *upperCounter {
	n := len(diag)
	bases := make([]int, 0, UpperSize(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bases = append(bases, diag[i])
		}
	}
	return &upperCounter{bases: bases, digits: make([]int, len(bases))}
}

// values returns the current digit vector (the T slice), safe to mutate
// without affecting the counter.
func (u *upperCounter) values() []int {
	out := make([]int, len(u.digits))
	copy(out, u.digits)
	return out
}

// advance steps to the next digit vector in little-endian mixed-radix
// order and reports whether it did so without overflowing. On overflow
// every digit is left at zero (the counter has wrapped around).
func (u *upperCounter) advance() bool {
	for i := 0; i < len(u.digits); i++ {
		u.digits[i]++
		if u.digits[i] < u.bases[i] {
			return true
		}
		u.digits[i] = 0
	}
	return false
}

package hermite

import "github.com/pkg/errors"

// Counter enumerates every n×n Hermite Normal Form matrix of determinant
// d, for d ranging over [dLow, dHigh], one matrix per Advance.
//
// For a fixed determinant it walks the diagonal via orderedFactorizations
// (largest leading factor first, spilling rightward), and for each
// diagonal it sweeps every legal upper-triangle combination via
// upperCounter.
type Counter struct {
	n           int
	dLow, dHigh int
	d           int
	diagonals   [][]int
	diagIdx     int
	upper       *upperCounter
	valid       bool
}

// New constructs a Counter over the determinant range [dLow, dHigh] in n
// dimensions, starting at the initial HNF of dLow. It fails with
// ErrInvalidArgument if dLow < 1, dHigh < dLow, or n < 1.
func New(dLow, dHigh, n int) (*Counter, error) {
	if dLow < 1 || dHigh < dLow || n < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "hermite.New(dLow=%d, dHigh=%d, n=%d)", dLow, dHigh, n)
	}

	c := &Counter{n: n, dLow: dLow, dHigh: dHigh}
	c.installDeterminant(dLow)
	return c, nil
}

// NewAt constructs a Counter fixed at a single determinant d (equivalent
// to New(d, d, n)): it terminates after exhausting d's sweep rather than
// spilling into d+1.
func NewAt(d, n int) (*Counter, error) {
	return New(d, d, n)
}

// installDeterminant resets all per-determinant state to the initial HNF
// of d: D=(d,1,...,1), T=0.
func (c *Counter) installDeterminant(d int) {
	c.d = d
	c.diagonals = orderedFactorizations(d, c.n)
	c.diagIdx = 0
	c.upper = newUpperCounter(c.diagonals[0])
	c.valid = true
}

// Current returns the HNF matrix the counter currently sits on.
func (c *Counter) Current() *Matrix {
	m, err := Zip(c.diagonals[c.diagIdx], c.upper.values())
	if err != nil {
		// diagonals and upper are always built together by this package;
		// a mismatch here would be a bug in installDeterminant/Advance.
		panic(err)
	}
	return m
}

// Determinant returns the determinant the counter is currently sweeping.
func (c *Counter) Determinant() int {
	return c.d
}

// Diagonal returns the current diagonal vector D.
func (c *Counter) Diagonal() []int {
	d := make([]int, len(c.diagonals[c.diagIdx]))
	copy(d, c.diagonals[c.diagIdx])
	return d
}

// Dim returns the matrix dimension n.
func (c *Counter) Dim() int {
	return c.n
}

// Position returns the index of the current diagonal within this
// determinant's diagonal enumeration. Exposed for introspection and
// testing only.
func (c *Counter) Position() int {
	return c.diagIdx
}

// Valid reports whether the counter still has matrices left to emit.
func (c *Counter) Valid() bool {
	return c.valid
}

// Advance steps to the next HNF matrix: first along the upper-triangle
// sweep, then (on overflow) along the diagonal walk, then (on diagonal
// exhaustion) to the next determinant. Once the determinant range is
// exhausted, Valid becomes false and further Advance calls are no-ops.
func (c *Counter) Advance() {
	if !c.valid {
		return
	}

	if c.upper.advance() {
		return
	}

	c.diagIdx++
	if c.diagIdx < len(c.diagonals) {
		c.upper = newUpperCounter(c.diagonals[c.diagIdx])
		return
	}

	if c.d < c.dHigh {
		c.installDeterminant(c.d + 1)
		return
	}

	c.valid = false
}

// ResetCurrent restarts the sweep at the current determinant from its
// initial diagonal (D=(d,1,...,1), T=0).
func (c *Counter) ResetCurrent() {
	c.installDeterminant(c.d)
}

// ResetFull restarts the counter at dLow's initial diagonal.
func (c *Counter) ResetFull() {
	c.installDeterminant(c.dLow)
}

// NextDeterminant skips the remaining HNFs at the current determinant and
// jumps to the initial diagonal of d+1. If the current determinant is
// already dHigh, Valid becomes false.
func (c *Counter) NextDeterminant() {
	if c.d < c.dHigh {
		c.installDeterminant(c.d + 1)
		return
	}
	c.valid = false
}

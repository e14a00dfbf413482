package hermite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestZipRoundTrip: Zip is the exact inverse of reading a matrix's
// diagonal and upper triangle back off.
func TestZipRoundTrip(t *testing.T) {
	c, err := NewAt(30, 3)
	require.NoError(t, err)

	for c.Valid() {
		m := c.Current()
		z, zerr := Zip(m.Diagonal(), m.UpperTriangle())
		require.NoError(t, zerr)
		require.True(t, m.Equal(z))
		c.Advance()
	}
}

func TestZipDimensionMismatch(t *testing.T) {
	_, err := Zip([]int{1, 2, 3}, []int{1, 2})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

// TestExpandDimsRoundTrip: embedding a smaller HNF into a larger one and
// then restricting back to the active mask recovers the original matrix
// exactly.
func TestExpandDimsRoundTrip(t *testing.T) {
	h, err := Zip([]int{2, 3}, []int{1})
	require.NoError(t, err)

	mask := []bool{false, true, false, true, false}
	expanded, err := ExpandDims(h, mask)
	require.NoError(t, err)
	require.Equal(t, 5, expanded.Dim())

	for i, active := range mask {
		if !active {
			require.Equal(t, 1, expanded.At(i, i))
		}
	}

	restricted := NewMatrix(2)
	activeIdx := make([]int, 0, 2)
	for i, active := range mask {
		if active {
			activeIdx = append(activeIdx, i)
		}
	}
	for hi, gi := range activeIdx {
		for hj, gj := range activeIdx {
			restricted.Set(hi, hj, expanded.At(gi, gj))
		}
	}
	require.True(t, h.Equal(restricted))
}

func TestExpandDimsMaskMismatch(t *testing.T) {
	h := NewMatrix(3)
	_, err := ExpandDims(h, []bool{true, true, false, false})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestUpperSize(t *testing.T) {
	require.Equal(t, 0, UpperSize(1))
	require.Equal(t, 1, UpperSize(2))
	require.Equal(t, 3, UpperSize(3))
	require.Equal(t, 6, UpperSize(4))
}

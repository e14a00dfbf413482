package hermite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOrderedFactorizationsD6N3 pins the exact walk order for d=6, n=3.
func TestOrderedFactorizationsD6N3(t *testing.T) {
	want := [][]int{
		{6, 1, 1},
		{3, 2, 1},
		{3, 1, 2},
		{2, 3, 1},
		{2, 1, 3},
		{1, 6, 1},
		{1, 3, 2},
		{1, 2, 3},
		{1, 1, 6},
	}

	got := orderedFactorizations(6, 3)
	require.Equal(t, want, got)
}

// TestOrderedFactorizationsBoundaries covers the n=1 and d=1 edges.
func TestOrderedFactorizationsBoundaries(t *testing.T) {
	require.Equal(t, [][]int{{7}}, orderedFactorizations(7, 1))
	require.Equal(t, [][]int{{1, 1, 1}}, orderedFactorizations(1, 3))
}

// TestOrderedFactorizationsExhaustive checks every emitted tuple has the
// right product and that the multiset equals the brute-force set of
// ordered factorizations, for a handful of (d, parts).
func TestOrderedFactorizationsExhaustive(t *testing.T) {
	for _, tc := range []struct{ d, parts int }{
		{12, 2}, {12, 3}, {30, 3}, {16, 4},
	} {
		got := orderedFactorizations(tc.d, tc.parts)

		want := bruteForceFactorizations(tc.d, tc.parts)
		require.ElementsMatch(t, want, got, "d=%d parts=%d", tc.d, tc.parts)

		seen := make(map[string]bool, len(got))
		for _, row := range got {
			key := rowKey(row)
			require.False(t, seen[key], "duplicate diagonal %v", row)
			seen[key] = true

			product := 1
			for _, v := range row {
				product *= v
			}
			require.Equal(t, tc.d, product)
		}
	}
}

func bruteForceFactorizations(d, parts int) [][]int {
	if parts == 1 {
		return [][]int{{d}}
	}
	var out [][]int
	for f := 1; f <= d; f++ {
		if d%f != 0 {
			continue
		}
		for _, tail := range bruteForceFactorizations(d/f, parts-1) {
			row := append([]int{f}, tail...)
			out = append(out, row)
		}
	}
	return out
}

func rowKey(row []int) string {
	return fmt.Sprint(row)
}

package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Under the trivial group the canonical representative of t is just
// hnf(t).
func TestCanonicalHNFTrivialGroup(t *testing.T) {
	m := IntMatrix{{2, 1, 0}, {0, 1, 0}, {0, 0, 3}}
	h, op, err := CanonicalHNF(m, Identity(), Trivial())
	require.NoError(t, err)
	require.Equal(t, 0, op)

	want, _, err := HNF(m)
	require.NoError(t, err)
	require.Equal(t, want, h)
}

// Under the cubic group the canonical form is the HNFLess-minimum over
// every operation image, verified here by direct scan.
func TestCanonicalHNFCubic(t *testing.T) {
	unit := Identity()
	group := Cubic()
	m := IntMatrix{{4, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	h, op, err := CanonicalHNF(m, unit, group)
	require.NoError(t, err)
	require.GreaterOrEqual(t, op, 0)
	require.Less(t, op, group.Size())

	reps, err := IntegerReps(unit, group)
	require.NoError(t, err)
	for _, r := range reps {
		img, _, err := HNF(r.Mul(m))
		require.NoError(t, err)
		require.False(t, HNFLess(img, h), "found image below the canonical form")
	}

	// diag(4,1,1) is cubic-equivalent to diag(1,1,4), which is minimal.
	require.Equal(t, IntMatrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 4}}, h)
}

// The canonical form is an orbit invariant: every member of the orbit
// maps to the same representative.
func TestCanonicalHNFOrbitInvariant(t *testing.T) {
	unit := Identity()
	group := Cubic()
	m := IntMatrix{{2, 1, 1}, {0, 2, 0}, {0, 0, 1}}

	want, _, err := CanonicalHNF(m, unit, group)
	require.NoError(t, err)

	reps, err := IntegerReps(unit, group)
	require.NoError(t, err)
	for k, r := range reps {
		member, _, err := HNF(r.Mul(m))
		require.NoError(t, err)
		got, _, err := CanonicalHNF(member, unit, group)
		require.NoError(t, err)
		require.Equal(t, want, got, "orbit member via operation %d disagrees", k)
	}
}

func TestCanonicalHNFErrors(t *testing.T) {
	_, _, err := CanonicalHNF(IntMatrix{}, Identity(), Trivial())
	require.ErrorIs(t, err, ErrSingular)

	_, _, err = CanonicalHNF(IdentityInt(), Identity(), SlicePointGroup{})
	require.ErrorIs(t, err, ErrEmptyGroup)
}

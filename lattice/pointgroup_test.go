package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCubicGroup(t *testing.T) {
	g := Cubic()
	require.Equal(t, 48, g.Size())

	seen := make(map[RealMatrix]bool, 48)
	for i := 0; i < g.Size(); i++ {
		op := g.At(i)
		require.True(t, op.isOrthogonal(1e-12), "operation %d not orthogonal", i)
		require.False(t, seen[op], "operation %d duplicated", i)
		seen[op] = true
	}
}

func TestTrivialGroup(t *testing.T) {
	g := Trivial()
	require.Equal(t, 1, g.Size())
	require.Equal(t, IdentityReal(), g.At(0))
}

func TestDerivePointGroupCubic(t *testing.T) {
	g, err := DerivePointGroup(Identity(), 1e-5)
	require.NoError(t, err)
	require.Equal(t, 48, g.Size(), "simple cubic lattice has the full m-3m group")
}

func TestDerivePointGroupFCC(t *testing.T) {
	g, err := DerivePointGroup(FCC(4.05), 1e-5)
	require.NoError(t, err)
	require.Equal(t, 48, g.Size(), "fcc shares the full cubic point group")
}

func TestDerivePointGroupTriclinic(t *testing.T) {
	// A generic low-symmetry basis admits only identity and inversion.
	lat, err := NewRealLattice(RealMatrix{
		{1.0, 0.13, 0.27},
		{0.0, 1.31, 0.41},
		{0.0, 0.0, 1.73},
	})
	require.NoError(t, err)

	g, err := DerivePointGroup(lat, 1e-5)
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())
}

func TestDerivePointGroupBadTolerance(t *testing.T) {
	_, err := DerivePointGroup(Identity(), 0)
	require.ErrorIs(t, err, ErrBadTolerance)

	_, err = DerivePointGroup(Identity(), -1e-3)
	require.ErrorIs(t, err, ErrBadTolerance)
}

func TestIntegerRepsCubicIdentityLattice(t *testing.T) {
	// With U = I the integer representation of each cubic operation is the
	// operation itself.
	reps, err := IntegerReps(Identity(), Cubic())
	require.NoError(t, err)
	g := Cubic()
	for k, r := range reps {
		require.Equal(t, g.At(k).Round(), r)
		d := r.Det()
		require.True(t, d == 1 || d == -1)
	}
}

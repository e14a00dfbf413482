// Package enumerator_test provides runnable examples for the
// symmetry-unique supercell walk.
package enumerator_test

import (
	"fmt"

	"github.com/solidnomad/supercell/enumerator"
	"github.com/solidnomad/supercell/lattice"
)

// ExampleEnumerator counts the symmetrically unique supercells of the
// simple cubic lattice at volumes 1 through 4.
func ExampleEnumerator() {
	enum, err := enumerator.New(lattice.Identity(), lattice.Cubic(), 1, 5)
	if err != nil {
		fmt.Println(err)
		return
	}

	counts := make(map[int]int)
	for it := enum.Begin(); !it.Equal(enum.End()); it.Advance() {
		counts[it.Volume()]++
	}
	fmt.Println(counts[1], counts[2], counts[3], counts[4])
	// Output: 1 3 3 7
}

// ExampleEnforceMinVolume finds the smallest cube-shaped supercell of
// at least ten unit volumes.
func ExampleEnforceMinVolume() {
	m, err := enumerator.EnforceMinVolume(lattice.Identity(), lattice.IdentityInt(), lattice.Cubic(), 10, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Det())
	// Output: 27
}

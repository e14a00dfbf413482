// Package lattice_test provides runnable examples for the lattice
// reference implementations.
package lattice_test

import (
	"fmt"

	"github.com/solidnomad/supercell/lattice"
)

// ExampleHNF decomposes an integer matrix into its Hermite Normal Form.
func ExampleHNF() {
	m := lattice.IntMatrix{{0, 1, 0}, {2, 0, 0}, {0, 0, 3}}
	h, _, err := lattice.HNF(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(h)
	// Output:
	// [1, 0, 0]
	// [0, 2, 0]
	// [0, 0, 3]
}

// ExampleDerivePointGroup recovers the 48 operations of the cubic
// point group from the identity lattice.
func ExampleDerivePointGroup() {
	g, err := lattice.DerivePointGroup(lattice.Identity(), 1e-5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Size())
	// Output: 48
}

package hermite_test

import (
	"fmt"

	"github.com/solidnomad/supercell/hermite"
)

// ExampleCounter walks every 2×2 HNF of determinant 2.
func ExampleCounter() {
	c, err := hermite.NewAt(2, 2)
	if err != nil {
		panic(err)
	}
	for c.Valid() {
		fmt.Print(c.Current())
		c.Advance()
	}
	// Output:
	// [2, 0]
	// [0, 1]
	// [2, 1]
	// [0, 1]
	// [1, 0]
	// [0, 2]
}

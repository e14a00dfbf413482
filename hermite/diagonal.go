package hermite

// divisorsDescending returns every positive divisor of n, largest first.
// n must be >= 1.
func divisorsDescending(n int) []int {
	var small, large []int
	for f := 1; f*f <= n; f++ {
		if n%f != 0 {
			continue
		}
		small = append(small, f)
		if g := n / f; g != f {
			large = append(large, g)
		}
	}
	// large holds the big cofactors in the order their small partner was
	// found (ascending f => descending g), small holds the small factors
	// ascending. Concatenating large then reversed-small yields a fully
	// descending list.
	out := make([]int, 0, len(small)+len(large))
	out = append(out, large...)
	for i := len(small) - 1; i >= 0; i-- {
		out = append(out, small[i])
	}
	return out
}

// orderedFactorizations enumerates every ordered tuple (D0,...,D_{parts-1})
// of positive integers with product d, in the order: D0 ranges over the
// divisors of d from largest to smallest, and for each D0 the remaining
// parts-1 entries recursively enumerate the ordered factorizations of
// d/D0 in the same way.
//
// The walk visits every diagonal exactly once, starting at (d,1,...,1)
// and ending at (1,...,1,d). For d=6, parts=3 the order is (6,1,1),
// (3,2,1), (3,1,2), (2,3,1), (2,1,3), (1,6,1), (1,3,2), (1,2,3), (1,1,6).
func orderedFactorizations(d, parts int) [][]int {
	if parts == 1 {
		return [][]int{{d}}
	}

	var out [][]int
	for _, d0 := range divisorsDescending(d) {
		for _, tail := range orderedFactorizations(d/d0, parts-1) {
			row := make([]int, 0, parts)
			row = append(row, d0)
			row = append(row, tail...)
			out = append(out, row)
		}
	}
	return out
}

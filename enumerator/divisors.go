package enumerator

import "github.com/emirpasic/gods/trees/redblacktree"

// divisorCache memoizes ascending divisor lists, keyed by the integer
// whose divisors were requested. The raw HNF walk asks for the divisors
// of v and of v/M00 on every diagonal move; within one volume those keys
// repeat constantly, so the lists are computed once and looked up from
// an ordered tree thereafter. The cache is owned by a single iterator
// and never shared.
type divisorCache struct {
	tree *redblacktree.Tree
}

func newDivisorCache() *divisorCache {
	return &divisorCache{tree: redblacktree.NewWithIntComparator()}
}

// divisors returns every positive divisor of n in ascending order,
// computing and caching the list on first request. n must be >= 1.
func (c *divisorCache) divisors(n int) []int {
	if v, found := c.tree.Get(n); found {
		return v.([]int)
	}

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
	ds := make([]int, 0, len(small)+len(large))
	ds = append(ds, small...)
	for i := len(large) - 1; i >= 0; i-- {
		ds = append(ds, large[i])
	}

	c.tree.Put(n, ds)

	return ds
}

// next returns the smallest divisor of n strictly greater than the
// given bound, or ok=false if none exists.
func (c *divisorCache) next(n, above int) (d int, ok bool) {
	for _, d := range c.divisors(n) {
		if d > above {
			return d, true
		}
	}

	return 0, false
}

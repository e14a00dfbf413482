package enumerator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/solidnomad/supercell/lattice"
)

// EnumerateVolumesConcurrently collects the canonical matrices of every
// volume in [BeginVolume, EndVolume), driving one independent iterator
// per volume across at most workers goroutines. The result is indexed
// by volume offset: result[i] holds the matrices of volume
// BeginVolume+i, in the same order a sequential walk emits them.
//
// The core walk stays single-threaded; this helper only exploits the
// guarantee that iterators derived from one immutable Enumerator are
// independent. It returns early with ctx.Err() on cancellation.
func (e *Enumerator) EnumerateVolumesConcurrently(ctx context.Context, workers int) ([][]lattice.IntMatrix, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([][]lattice.IntMatrix, e.end-e.begin)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for v := e.begin; v < e.end; v++ {
		v := v
		g.Go(func() error {
			var out []lattice.IntMatrix
			for it := e.IteratorAt(v); !it.Done() && it.Volume() == v; it.Advance() {
				if err := ctx.Err(); err != nil {
					return err
				}
				m, err := it.Matrix()
				if err != nil {
					return err
				}
				out = append(out, m)
			}
			results[v-e.begin] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

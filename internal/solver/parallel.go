// internal/solver/parallel.go
//
// Parallel variant of FindWords: every start cell is searched in its own
// goroutine with private used-cell state, and the per-cell sets are merged.
// The result is the same set FindWords returns.

package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mntnorv/wrdl/internal/grid"
)

// FindWordsParallel searches g with at most workers start cells in flight
// (workers < 1 means no limit). The search itself has no cancellation
// points; ctx only stops new start cells from being scheduled, in which case
// its error is returned instead of a partial result.
func (f *Finder) FindWordsParallel(ctx context.Context, g *grid.Grid, d Lexicon, workers int) (map[string]struct{}, error) {
	limit := f.maxLen()
	found := make([]map[string]struct{}, g.Len())

	eg, egctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i := range g.Len() {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			s := newSearch(g, d, limit)
			s.visit(i, "")
			found[i] = s.words
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := make(map[string]struct{})
	for _, set := range found {
		for w := range set {
			words[w] = struct{}{}
		}
	}
	return words, nil
}

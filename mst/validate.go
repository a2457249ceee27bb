package mst

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spantree/edge"
)

// parallelValidationThreshold is the smallest edge count validated in
// chunks when more than one worker is configured.
const parallelValidationThreshold = 1 << 14

// validate checks V and every edge before any processing starts.
// The reported error always names the lowest-index offending edge, whether
// the scan ran inline or in parallel chunks.
func validate[W edge.Weight](n int, edges []edge.Edge[W], workers int) error {
	if n < 0 {
		return fmt.Errorf("%w: %w: V=%d", ErrInvalidInput, ErrNegativeVertexCount, n)
	}
	if workers <= 1 || len(edges) < parallelValidationThreshold {
		return checkEdges(n, edges, 0)
	}

	chunk := (len(edges) + workers - 1) / workers
	errs := make([]error, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < workers; i++ {
		lo := i * chunk
		if lo >= len(edges) {
			break
		}
		hi := min(lo+chunk, len(edges))
		i := i
		g.Go(func() error {
			errs[i] = checkEdges(n, edges[lo:hi], lo)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return nil
	}
	// Wait reports whichever chunk failed first in time; scanning in chunk
	// order keeps the message deterministic.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// checkEdges validates edges whose first element sits at index offset of
// the caller's slice.
func checkEdges[W edge.Weight](n int, edges []edge.Edge[W], offset int) error {
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: %w: edge #%d %v with V=%d",
				ErrInvalidInput, ErrVertexOutOfRange, offset+i, e, n)
		}
		if !edge.Finite(e.Weight) {
			return fmt.Errorf("%w: %w: edge #%d %v",
				ErrInvalidInput, ErrNonFiniteWeight, offset+i, e)
		}
	}

	return nil
}

package mst

import (
	"fmt"

	"github.com/katalvlaran/spantree/edge"
	"github.com/katalvlaran/spantree/minheap"
)

// candidate is a heap entry: the edge, its input position, and (for Prim)
// the endpoint that would be added to the tree.
type candidate[W edge.Weight] struct {
	e   edge.Edge[W]
	seq int
	to  int
}

// candidateLess returns the heap comparator for a tie-break policy.
// Both policies fall back to the input position, so no two candidates from
// one input are ever incomparable.
func candidateLess[W edge.Weight](tb TieBreak) func(a, b candidate[W]) bool {
	if tb == TieByInputOrder {
		return func(a, b candidate[W]) bool {
			if a.e.Weight != b.e.Weight {
				return a.e.Weight < b.e.Weight
			}
			return a.seq < b.seq
		}
	}

	byEnds := edge.ByWeightThenEndpoints[W]()
	return func(a, b candidate[W]) bool {
		if byEnds(a.e, b.e) {
			return true
		}
		if byEnds(b.e, a.e) {
			return false
		}
		return a.seq < b.seq
	}
}

// heapOptions translates Options into minheap options for at most hint entries.
func heapOptions(cfg Options, hint int) []minheap.Option {
	if cfg.HeapCapacity > 0 {
		return []minheap.Option{minheap.WithCapacity(cfg.HeapCapacity)}
	}

	return []minheap.Option{minheap.WithPrealloc(hint)}
}

// loadHeap places every edge into a fresh candidate heap.
func loadHeap[W edge.Weight](edges []edge.Edge[W], cfg Options) (*minheap.Heap[candidate[W]], error) {
	less := candidateLess[W](cfg.TieBreak)
	hopts := heapOptions(cfg, len(edges))

	if cfg.HeapBuild == HeapBuildInsert {
		h, err := minheap.New(less, hopts...)
		if err != nil {
			return nil, err
		}
		for i, e := range edges {
			if err = h.Push(candidate[W]{e: e, seq: i}); err != nil {
				return nil, fmt.Errorf("mst: loading edge #%d of %d: %w", i, len(edges), err)
			}
		}
		return h, nil
	}

	cands := make([]candidate[W], len(edges))
	for i, e := range edges {
		cands[i] = candidate[W]{e: e, seq: i}
	}
	h, err := minheap.From(cands, less, hopts...)
	if err != nil {
		return nil, fmt.Errorf("mst: loading %d edges: %w", len(edges), err)
	}

	return h, nil
}

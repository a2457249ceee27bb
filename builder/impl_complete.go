// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   - Every unordered pair {i, j}, i < j, lexicographic order.
//
// Complexity: O(n²) time, n(n-1)/2 appended edges.

package builder

import "fmt"

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := g.addBlock(n)
		g.Edges = growEdges(g.Edges, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.connect(cfg, base+i, base+j)
			}
		}

		return nil
	}
}

// growEdges makes room for extra more edges without reallocating per append.
func growEdges[E any](s []E, extra int) []E {
	if cap(s)-len(s) >= extra {
		return s
	}
	out := make([]E, len(s), len(s)+extra)
	copy(out, s)

	return out
}

// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Edges base+i - base+i+1 for i in [0, n-2], in ascending i.
//
// Complexity: O(n) time, O(n) appended edges.

package builder

import "fmt"

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := g.addBlock(n)
		for i := 0; i < n-1; i++ {
			g.connect(cfg, base+i, base+i+1)
		}

		return nil
	}
}

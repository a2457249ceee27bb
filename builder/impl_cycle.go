// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Path edges in ascending order, then the closing edge (n-1) - 0.
//
// Complexity: O(n) time, n appended edges.

package builder

import "fmt"

// Cycle returns a Constructor that appends the ring C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := g.addBlock(n)
		for i := 0; i < n-1; i++ {
			g.connect(cfg, base+i, base+i+1)
		}
		g.connect(cfg, base+n-1, base)

		return nil
	}
}

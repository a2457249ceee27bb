// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - The hub is the first vertex of the block; spokes hub - leaf in ascending order.
//
// Complexity: O(n) time, n-1 appended edges.

package builder

import "fmt"

// Star returns a Constructor that appends a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := g.addBlock(n)
		for leaf := 1; leaf < n; leaf++ {
			g.connect(cfg, hub, hub+leaf)
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_isolated.go - implementation of Isolated(n).
//
// Contract:
//   - n ≥ MinIsolatedNodes (else ErrTooFewVertices).
//   - Adds n vertices and no edges: n singleton components.

package builder

import "fmt"

// Isolated returns a Constructor that appends n vertices without edges.
func Isolated(n int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}
		g.addBlock(n)

		return nil
	}
}

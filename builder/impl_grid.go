// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   - Vertex (r, c) is base + r*cols + c.
//   - Row-major scan; for each cell the right neighbor first, then the one below.
//
// Complexity: O(rows·cols) time, rows(cols-1) + cols(rows-1) appended edges.

package builder

import "fmt"

// Grid returns a Constructor that appends a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := g.addBlock(rows * cols)
		g.Edges = growEdges(g.Edges, rows*(cols-1)+cols*(rows-1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := base + r*cols + c
				if c+1 < cols {
					g.connect(cfg, v, v+1)
				}
				if r+1 < rows {
					g.connect(cfg, v, v+cols)
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor appends its own vertex block [base, base+n); edges
//     never cross blocks.
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/edge"
)

// Graph is an undirected edge list over vertices [0, Vertices).
// It is the input shape consumed by mst.Kruskal and mst.Prim.
type Graph struct {
	Vertices int
	Edges    []edge.Edge[int64]
}

// addBlock reserves n fresh vertices and returns the first index.
func (g *Graph) addBlock(n int) int {
	base := g.Vertices
	g.Vertices += n

	return base
}

// connect appends the undirected edge {u, v} with the next configured weight.
func (g *Graph) connect(cfg builderConfig, u, v int) {
	g.Edges = append(g.Edges, edge.New(u, v, cfg.weight()))
}

// Constructor appends one deterministic block to g using the resolved
// builderConfig. Constructors MUST validate parameters before touching g
// and return sentinel errors (no panics).
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) via %w.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := &Graph{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

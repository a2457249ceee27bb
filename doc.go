// Package spantree computes minimum spanning trees and forests of undirected,
// weighted graphs given as a vertex count plus an edge list.
//
// The module is organized in small, independently usable packages:
//
//	edge/        - Edge[W] over vertices [0, V), the Weight constraint, comparators
//	minheap/     - generic binary min-heap with an injected comparator and optional capacity
//	disjointset/ - union-find forest with path compression and union by rank
//	mst/         - Kruskal (one-shot and step-wise Builder), Prim, Compute dispatcher
//	builder/     - deterministic edge-list fixtures (paths, cycles, grids, G(n,p), ...)
//
// Quick example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	edges := []edge.Edge[int]{
//		edge.New(0, 1, 4), edge.New(1, 2, 2), edge.New(2, 3, 3),
//		edge.New(3, 0, 5), edge.New(0, 2, 1),
//	}
//	res, err := mst.Kruskal(4, edges)
//	// res.Edges = [0-2(1) 1-2(2) 2-3(3)], res.Total = 6, res.Status = complete
//
// A disconnected graph is not an error: the result is its maximal spanning
// forest with Status == mst.StateDisconnected.
//
// Install:
//
//	go get github.com/katalvlaran/spantree
package spantree

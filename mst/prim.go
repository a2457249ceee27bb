// Package mst provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows trees from a root vertex using the same candidate min-heap as Kruskal.
package mst

import (
	"fmt"

	"github.com/katalvlaran/spantree/edge"
	"github.com/katalvlaran/spantree/minheap"
)

// Prim computes the Minimum Spanning Tree of an undirected weighted graph by
// growing outwards from root. When the frontier empties before every vertex
// is reached, growth restarts from the lowest-numbered unvisited vertex, so
// a disconnected graph yields its maximal spanning forest exactly like Kruskal.
//
// Error Conditions:
//   - ErrInvalidInput (joined with the specific cause) for bad n, endpoints or weights.
//   - ErrInvalidInput + ErrRootOutOfRange : n > 0 and root outside [0, n).
//   - minheap.ErrCapacityExceeded          : the frontier outgrew WithHeapCapacity.
//
// Steps:
//  1. Validate input and root.
//  2. Build adjacency lists of edge indices; self-loops are never candidates.
//  3. Mark root visited and push its incident edges.
//  4. While the heap is not empty and fewer than n-1 edges are accepted:
//     a. Pop the minimum candidate (u→v).
//     b. If v is already visited, reject it (it would close a cycle).
//     c. Otherwise accept it, mark v visited and push v's edges to unvisited vertices.
//  5. Repeat from step 3 for every unvisited vertex in ascending order.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[W edge.Weight](n int, edges []edge.Edge[W], root int, opts ...Option) (Result[W], error) {
	cfg := resolve(opts)
	log := cfg.Logger.WithName("prim")

	// 1. Validate input and root.
	if err := validate(n, edges, cfg.Workers); err != nil {
		return Result[W]{}, err
	}
	if n == 0 {
		return Result[W]{Status: StateComplete}, nil
	}
	if root < 0 || root >= n {
		return Result[W]{}, fmt.Errorf("%w: %w: root=%d with V=%d", ErrInvalidInput, ErrRootOutOfRange, root, n)
	}

	// 2. Adjacency by edge index keeps the caller's orientation intact.
	adj := make([][]int, n)
	for i, e := range edges {
		if e.IsLoop() {
			continue
		}
		adj[e.From] = append(adj[e.From], i)
		adj[e.To] = append(adj[e.To], i)
	}

	pq, err := minheap.New(candidateLess[W](cfg.TieBreak), heapOptions(cfg, len(edges))...)
	if err != nil {
		return Result[W]{}, err
	}

	var (
		visited = make([]bool, n)
		res     = Result[W]{Edges: make([]edge.Edge[W], 0, n-1)}
	)

	// visit marks v and pushes every edge leading out of the tree.
	visit := func(v int) error {
		visited[v] = true
		for _, idx := range adj[v] {
			e := edges[idx]
			to, _ := e.Other(v)
			if visited[to] {
				continue
			}
			if err := pq.Push(candidate[W]{e: e, seq: idx, to: to}); err != nil {
				return fmt.Errorf("mst: frontier of vertex %d: %w", v, err)
			}
		}
		return nil
	}

	log.V(1).Info("initialized", "vertices", n, "edges", len(edges), "root", root)

	// 3–5. Grow one tree per component, root first.
	for i := -1; i < n && len(res.Edges) < n-1; i++ {
		start := root
		if i >= 0 {
			start = i
		}
		if visited[start] {
			continue
		}
		if err := visit(start); err != nil {
			return Result[W]{}, err
		}

		for pq.Len() > 0 && len(res.Edges) < n-1 {
			c, err := pq.Pop()
			if err != nil {
				return Result[W]{}, fmt.Errorf("mst: extract: %w", err)
			}
			res.Examined++
			if visited[c.to] {
				res.Rejected++
				log.V(2).Info("rejected", "edge", c.e.String(), "reason", "cycle")
				continue
			}

			res.Edges = append(res.Edges, c.e)
			res.Total += c.e.Weight
			log.V(2).Info("accepted", "edge", c.e.String(), "count", len(res.Edges))
			if err := visit(c.to); err != nil {
				return Result[W]{}, err
			}
		}
	}

	res.Components = n - len(res.Edges)
	res.Status = StateDisconnected
	if len(res.Edges) == n-1 {
		res.Status = StateComplete
	}
	log.V(1).Info(res.Status.String(), "accepted", len(res.Edges), "components", res.Components)

	return res, nil
}

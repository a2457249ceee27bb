// Package mst provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It consumes a vertex count and an undirected edge list and produces the
// accepted edges as a spanning tree, or a spanning forest when the graph is
// disconnected.
package mst

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/spantree/disjointset"
	"github.com/katalvlaran/spantree/edge"
	"github.com/katalvlaran/spantree/minheap"
)

// Builder is the greedy Kruskal driver. It owns a candidate min-heap and a
// disjoint-set forest and advances one extraction per Step.
//
// A Builder is single-use and not safe for concurrent use: every acceptance
// mutates the forest that gates the next extraction.
type Builder[W edge.Weight] struct {
	n        int
	target   int // acceptances needed for a spanning tree: max(V-1, 0)
	heap     *minheap.Heap[candidate[W]]
	forest   *disjointset.Forest
	accepted []edge.Edge[W]
	total    W
	state    State
	examined int
	rejected int
	log      logr.Logger
}

// NewBuilder validates the input, loads every edge into the heap and creates
// a forest of n singletons. The builder starts in StateInitialized.
//
// Error Conditions (nothing is processed when any of them occurs):
//   - ErrInvalidInput + ErrNegativeVertexCount : n < 0.
//   - ErrInvalidInput + ErrVertexOutOfRange    : an endpoint outside [0, n).
//   - ErrInvalidInput + ErrNonFiniteWeight     : a NaN or infinite weight.
//   - minheap.ErrCapacityExceeded              : WithHeapCapacity below len(edges).
//
// Complexity: O(E) with heapify, O(E log E) with HeapBuildInsert; O(V) for the forest.
func NewBuilder[W edge.Weight](n int, edges []edge.Edge[W], opts ...Option) (*Builder[W], error) {
	cfg := resolve(opts)

	// 1. Fail fast on bad input.
	if err := validate(n, edges, cfg.Workers); err != nil {
		return nil, err
	}

	// 2. Candidate heap over all edges.
	h, err := loadHeap(edges, cfg)
	if err != nil {
		return nil, err
	}

	// 3. One singleton set per vertex.
	forest, err := disjointset.New(n, cfg.ForestOptions...)
	if err != nil {
		return nil, fmt.Errorf("mst: forest: %w", err)
	}

	b := &Builder[W]{
		n:        n,
		target:   max(n-1, 0),
		heap:     h,
		forest:   forest,
		accepted: make([]edge.Edge[W], 0, max(n-1, 0)),
		state:    StateInitialized,
		log:      cfg.Logger.WithName("kruskal"),
	}
	b.log.V(1).Info("initialized", "vertices", n, "edges", len(edges), "tieBreak", int(cfg.TieBreak))

	return b, nil
}

// State returns the current lifecycle state.
func (b *Builder[W]) State() State { return b.state }

// Step performs one extraction.
//
//  1. A terminal builder returns ErrFinished.
//  2. The first call moves Initialized → Running.
//  3. If V-1 edges are already accepted (always true for V ≤ 1) the builder
//     becomes Complete and ErrFinished is returned.
//  4. An empty heap means no candidates remain: the builder becomes
//     Disconnected and ErrFinished is returned.
//  5. Otherwise the minimum edge is accepted iff its endpoints lie in
//     different components; reaching V-1 acceptances completes the builder.
func (b *Builder[W]) Step() (Decision[W], error) {
	switch b.state {
	case StateComplete, StateDisconnected:
		return Decision[W]{}, ErrFinished
	case StateInitialized:
		b.state = StateRunning
	}

	if len(b.accepted) == b.target {
		b.finish(StateComplete)
		return Decision[W]{}, ErrFinished
	}

	c, err := b.heap.Pop()
	if errors.Is(err, minheap.ErrEmptyHeap) {
		b.finish(StateDisconnected)
		return Decision[W]{}, ErrFinished
	}
	if err != nil {
		return Decision[W]{}, fmt.Errorf("mst: extract: %w", err)
	}
	b.examined++

	merged, err := b.forest.Union(c.e.From, c.e.To)
	if err != nil {
		// Endpoints were validated up front; reaching this is a broken invariant.
		return Decision[W]{}, fmt.Errorf("mst: union %v: %w", c.e, err)
	}
	if !merged {
		b.rejected++
		b.log.V(2).Info("rejected", "edge", c.e.String(), "reason", "cycle")
		return Decision[W]{Edge: c.e}, nil
	}

	b.accepted = append(b.accepted, c.e)
	b.total += c.e.Weight
	b.log.V(2).Info("accepted", "edge", c.e.String(), "count", len(b.accepted))
	if len(b.accepted) == b.target {
		b.finish(StateComplete)
	}

	return Decision[W]{Edge: c.e, Accepted: true}, nil
}

// Run steps until the builder reaches a terminal state and returns the result.
// Complexity: O(E log E + E·α(V)) worst case; stops early after V-1 acceptances.
func (b *Builder[W]) Run() (Result[W], error) {
	for {
		_, err := b.Step()
		if errors.Is(err, ErrFinished) {
			return b.Result(), nil
		}
		if err != nil {
			return Result[W]{}, err
		}
	}
}

// Result returns a snapshot of the accepted edges and counters.
// The returned slice is a copy and may be retained by the caller.
func (b *Builder[W]) Result() Result[W] {
	return Result[W]{
		Edges:      slices.Clone(b.accepted),
		Total:      b.total,
		Status:     b.state,
		Components: b.forest.Components(),
		Examined:   b.examined,
		Rejected:   b.rejected,
	}
}

func (b *Builder[W]) finish(s State) {
	b.state = s
	b.log.V(1).Info(s.String(),
		"accepted", len(b.accepted),
		"components", b.forest.Components(),
		"examined", b.examined,
		"rejected", b.rejected,
		"pending", b.heap.Len())
}

// Kruskal computes the Minimum Spanning Tree of an undirected weighted graph
// with n vertices, or its maximal spanning forest when the graph is
// disconnected.
//
// Error Conditions:
//   - ErrInvalidInput (joined with the specific cause) for bad n, endpoints or weights.
//   - minheap.ErrCapacityExceeded when WithHeapCapacity is smaller than len(edges).
//
// A disconnected graph is not an error: Result.Status is StateDisconnected
// and len(Result.Edges) == n - Result.Components.
//
// Steps:
//  1. Validate n and every edge.
//  2. Heapify all edges under the configured tie-break.
//  3. Create n singleton sets.
//  4. Extract the minimum edge; if Union merges its endpoints, accept it.
//  5. Stop at n-1 acceptances (Complete) or when the heap empties (Disconnected).
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[W edge.Weight](n int, edges []edge.Edge[W], opts ...Option) (Result[W], error) {
	b, err := NewBuilder(n, edges, opts...)
	if err != nil {
		return Result[W]{}, err
	}

	return b.Run()
}

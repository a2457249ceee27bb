// Package mst computes Minimum Spanning Trees (MST) of undirected, weighted
// graphs given as a vertex count V and an edge list over vertices [0, V).
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices with |V|−1 edges, contains no cycle, and minimizes the sum of weights.
//     On a disconnected graph the same greedy process yields a maximal spanning forest.
//
//   - Why MST matters: cost-efficient network design, single-linkage clustering,
//     and as a subroutine of approximation algorithms (Christofides, Steiner trees).
//
// Algorithms Provided
//
//   - Kruskal(n, edges, opts...) (Result[W], error)
//
//   - Strategy: load every edge into a binary min-heap (minheap), then repeatedly extract the
//     lightest edge and consult a disjoint-set forest (disjointset): if its endpoints are in
//     different components, Union them and accept the edge; otherwise reject it as a cycle.
//     Stop at |V|−1 acceptances or when the heap is empty.
//
//   - Builder exposes the same loop one extraction at a time:
//     StateInitialized → StateRunning → {StateComplete, StateDisconnected}.
//
//   - Complexity: O(E) heapify + O(E log E) extractions + O(E·α(V)) forest work.
//
//   - Prim(n, edges, root, opts...) (Result[W], error)
//
//   - Strategy: grow a tree from root, keeping the edges that leave the tree in the same
//     min-heap. Restarts at the lowest unvisited vertex when the frontier empties.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Compute(n, edges, opts...) dispatches on WithMethod / WithRoot.
//
// Determinism
//
// Equal weights are ordered by an explicit, total tie-break rule:
//
//   - TieByEndpoints (default): weight, then From, then To, then input position.
//   - TieByInputOrder: weight, then input position (stable sort by weight).
//
// For a fixed input and policy, the accepted edges and their order are always identical.
//
// Error Conditions
//
//	All input errors satisfy errors.Is(err, ErrInvalidInput) and are reported
//	before any edge is processed:
//
//	- ErrNegativeVertexCount : V < 0.
//	- ErrVertexOutOfRange    : an endpoint outside [0, V).
//	- ErrNonFiniteWeight     : a NaN or ±Inf weight.
//	- ErrRootOutOfRange      : Prim root outside [0, V) (V > 0).
//
//	minheap.ErrCapacityExceeded surfaces when WithHeapCapacity is too small;
//	edges are never dropped silently. ErrUnknownMethod is returned by Compute.
//
//	A disconnected graph is NOT an error: Result.Status == StateDisconnected,
//	len(Result.Edges) == V − Result.Components.
//
// Concurrency
//
// The accept/reject loop is strictly sequential because every Union gates the
// next extraction. Only input validation may fan out (WithWorkers) via
// errgroup. Each call owns its heap and forest; nothing is shared.
//
// Logging
//
// WithLogger accepts a logr.Logger: V(1) records lifecycle transitions,
// V(2) records every accept/reject decision. The default discards everything.
package mst

// Package mst defines configuration options, states, results and sentinel
// errors for minimum spanning tree computation.
// It supports selecting between Kruskal and Prim via Options.
package mst

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/spantree/disjointset"
	"github.com/katalvlaran/spantree/edge"
)

// ErrInvalidInput is the umbrella for every input error. The specific cause
// (ErrNegativeVertexCount, ErrVertexOutOfRange, ...) is joined with it, so
// both errors.Is(err, ErrInvalidInput) and errors.Is(err, <cause>) hold.
// Input errors are reported before any edge is processed.
var ErrInvalidInput = errors.New("mst: invalid input")

// ErrNegativeVertexCount indicates a vertex count V < 0.
var ErrNegativeVertexCount = errors.New("mst: negative vertex count")

// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
var ErrVertexOutOfRange = errors.New("mst: vertex out of range")

// ErrNonFiniteWeight indicates an edge weight that is NaN or ±Inf.
var ErrNonFiniteWeight = errors.New("mst: non-finite edge weight")

// ErrRootOutOfRange indicates a Prim root outside [0, V).
var ErrRootOutOfRange = errors.New("mst: root vertex out of range")

// ErrUnknownMethod indicates Compute was asked for an unsupported algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// ErrFinished is returned by Builder.Step once the builder has reached a
// terminal state; no edge was examined by that call.
var ErrFinished = errors.New("mst: builder finished")

// MethodPrim selects Prim's algorithm (grow trees from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (global min-heap of edges plus union-find).
const MethodKruskal = "kruskal"

// State is a step of the greedy builder's lifecycle:
//
//	StateInitialized → StateRunning → {StateComplete, StateDisconnected}
type State int

const (
	// StateInitialized: heap and forest built, no edge extracted yet.
	StateInitialized State = iota

	// StateRunning: edges are being extracted and accepted or rejected.
	StateRunning

	// StateComplete: V-1 edges accepted; the result is a spanning tree.
	StateComplete

	// StateDisconnected: candidates exhausted before V-1 acceptances;
	// the result is a maximal spanning forest.
	StateDisconnected
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateDisconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further edges will be examined.
func (s State) Terminal() bool { return s == StateComplete || s == StateDisconnected }

// TieBreak selects how equal-weight edges are ordered in the heap.
// Every policy is a total order, so extraction is fully deterministic.
type TieBreak int

const (
	// TieByEndpoints orders equal weights by From, then To, then input
	// position. The result does not depend on the order of the input slice
	// except between byte-identical edges.
	TieByEndpoints TieBreak = iota

	// TieByInputOrder orders equal weights by their position in the input
	// slice (a stable sort by weight).
	TieByInputOrder
)

// HeapBuild selects how the initial candidate heap is populated.
type HeapBuild int

const (
	// HeapBuildHeapify builds the heap bottom-up in O(E).
	HeapBuildHeapify HeapBuild = iota

	// HeapBuildInsert inserts the edges one by one in O(E log E).
	HeapBuildInsert
)

// Options configures an MST computation.
// Use DefaultOptions() to get the default setup (Kruskal).
type Options struct {
	// Method to use with Compute: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// TieBreak orders equal-weight edges.
	TieBreak TieBreak

	// HeapBuild selects heapify or repeated insertion.
	HeapBuild HeapBuild

	// HeapCapacity fixes the candidate heap size; 0 lets it grow.
	HeapCapacity int

	// Workers bounds concurrent input validation; values ≤ 1 validate inline.
	Workers int

	// Logger receives lifecycle (V(1)) and per-edge (V(2)) records.
	Logger logr.Logger

	// ForestOptions are passed to disjointset.New.
	ForestOptions []disjointset.Option
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options initialized for Kruskal:
//
//	– Method    = MethodKruskal
//	– Root      = 0 (ignored by Kruskal)
//	– TieBreak  = TieByEndpoints
//	– HeapBuild = HeapBuildHeapify
//	– Workers   = 1
//	– Logger    = logr.Discard()
func DefaultOptions() Options {
	return Options{
		Method:    MethodKruskal,
		Root:      0,
		TieBreak:  TieByEndpoints,
		HeapBuild: HeapBuildHeapify,
		Workers:   1,
		Logger:    logr.Discard(),
	}
}

// WithMethod returns an Option that sets the algorithm Method used by Compute.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot returns an Option that sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// WithTieBreak sets the equal-weight ordering. Panics on an unknown policy.
func WithTieBreak(tb TieBreak) Option {
	if tb != TieByEndpoints && tb != TieByInputOrder {
		panic(fmt.Sprintf("mst: WithTieBreak(%d): unknown policy", int(tb)))
	}

	return func(o *Options) { o.TieBreak = tb }
}

// WithHeapBuild sets the heap population strategy. Panics on an unknown strategy.
func WithHeapBuild(hb HeapBuild) Option {
	if hb != HeapBuildHeapify && hb != HeapBuildInsert {
		panic(fmt.Sprintf("mst: WithHeapBuild(%d): unknown strategy", int(hb)))
	}

	return func(o *Options) { o.HeapBuild = hb }
}

// WithHeapCapacity fixes the candidate heap capacity to n edges. A graph
// with more edges fails with minheap.ErrCapacityExceeded instead of being
// truncated. Panics if n < 0.
func WithHeapCapacity(n int) Option {
	if n < 0 {
		panic("mst: WithHeapCapacity(n<0)")
	}

	return func(o *Options) { o.HeapCapacity = n }
}

// WithWorkers validates large edge lists with up to k goroutines.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("mst: WithWorkers(k<1)")
	}

	return func(o *Options) { o.Workers = k }
}

// WithLogger attaches a logr.Logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithForestOptions forwards options to the disjoint-set forest, e.g. to
// disable one of its heuristics.
func WithForestOptions(opts ...disjointset.Option) Option {
	return func(o *Options) { o.ForestOptions = append(o.ForestOptions, opts...) }
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Decision records one extraction made by the builder.
type Decision[W edge.Weight] struct {
	// Edge is the extracted candidate.
	Edge edge.Edge[W]

	// Accepted is true when Edge joined two components.
	Accepted bool
}

// Result is the outcome of an MST computation.
type Result[W edge.Weight] struct {
	// Edges holds the accepted edges in acceptance order (at most V-1).
	Edges []edge.Edge[W]

	// Total is the sum of the accepted weights.
	Total W

	// Status is StateComplete for a spanning tree, StateDisconnected for a
	// spanning forest. A mid-run snapshot carries the current state.
	Status State

	// Components is the number of connected components spanned by Edges;
	// len(Edges) == V - Components once the run is over.
	Components int

	// Examined counts extracted candidates; Rejected counts those that
	// would have closed a cycle.
	Examined int
	Rejected int
}

// Connected reports whether the result spans the whole graph.
func (r Result[W]) Connected() bool { return r.Status == StateComplete }

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(n, edges, opts...).
//	– MethodPrim:    calls Prim(n, edges, Root, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Prim and Kruskal can still be called directly.
func Compute[W edge.Weight](n int, edges []edge.Edge[W], opts ...Option) (Result[W], error) {
	cfg := resolve(opts)
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(n, edges, opts...)
	case MethodPrim:
		return Prim(n, edges, cfg.Root, opts...)
	default:
		return Result[W]{}, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// SPDX-License-Identifier: MIT
//
// Package edge defines the immutable weighted edge used by spantree and the
// comparators that order edges inside the min-heap.
//
// An Edge is an undirected triple (From, To, Weight) over integer vertex IDs
// in [0, V). (a,b,w) and (b,a,w) describe the same connection; the package
// never reorders endpoints and never deduplicates.
//
// Ordering policy is kept outside the Edge type: callers pick a Less value
// (ByWeight, ByWeightThenEndpoints, or their own) and hand it to the heap.
package edge

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Weight is the set of numeric types accepted as edge weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is an undirected weighted connection between two vertices.
type Edge[W Weight] struct {
	// From is the first endpoint as supplied by the caller.
	From int

	// To is the second endpoint as supplied by the caller.
	To int

	// Weight is the cost of the connection; it must be finite.
	Weight W
}

// New returns the edge (from, to, weight).
func New[W Weight](from, to int, weight W) Edge[W] {
	return Edge[W]{From: from, To: to, Weight: weight}
}

// Reversed returns the same edge with its endpoints swapped.
func (e Edge[W]) Reversed() Edge[W] {
	return Edge[W]{From: e.To, To: e.From, Weight: e.Weight}
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge[W]) IsLoop() bool { return e.From == e.To }

// Equivalent reports whether e and o describe the same undirected edge,
// i.e. equal weights and equal endpoints in either orientation.
func (e Edge[W]) Equivalent(o Edge[W]) bool {
	if e.Weight != o.Weight {
		return false
	}

	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Other returns the endpoint opposite to v.
// ok is false when v is not an endpoint of e.
func (e Edge[W]) Other(v int) (other int, ok bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return 0, false
	}
}

// String renders the edge as "from-to(weight)".
func (e Edge[W]) String() string {
	return fmt.Sprintf("%d-%d(%v)", e.From, e.To, e.Weight)
}

// Finite reports whether w is usable as an edge weight.
// Integers are always finite; floats must not be NaN or ±Inf.
func Finite[W Weight](w W) bool {
	f := float64(w)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sum returns the total weight of edges.
func Sum[W Weight](edges []Edge[W]) W {
	var total W
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

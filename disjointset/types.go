// SPDX-License-Identifier: MIT
// Package: spantree/disjointset
//
// types.go - sentinel errors and functional options for the forest.

package disjointset

import "errors"

var (
	// ErrNegativeSize indicates New was called with n < 0.
	ErrNegativeSize = errors.New("disjointset: negative element count")

	// ErrOutOfRange indicates an element outside [0, n).
	ErrOutOfRange = errors.New("disjointset: element out of range")
)

// Options selects which of the two forest heuristics are applied.
type Options struct {
	// PathCompression re-points every node visited by Find at the root.
	PathCompression bool

	// UnionByRank attaches the lower-rank root under the higher-rank root.
	UnionByRank bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables both heuristics.
func DefaultOptions() Options {
	return Options{PathCompression: true, UnionByRank: true}
}

// WithoutPathCompression makes Find a plain root walk.
// Trees are then flattened only by union by rank (O(log n) per Find).
func WithoutPathCompression() Option {
	return func(o *Options) { o.PathCompression = false }
}

// WithoutUnionByRank always attaches the root of b under the root of a.
// Ranks are still maintained so Rank keeps reporting an upper bound.
func WithoutUnionByRank() Option {
	return func(o *Options) { o.UnionByRank = false }
}

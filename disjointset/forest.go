// SPDX-License-Identifier: MIT

package disjointset

import "fmt"

// Forest is a disjoint-set forest over the elements 0..n-1, stored as two
// parallel flat arrays.
//
// Invariants:
//   - parent[r] == r exactly for roots; every parent chain ends at a root.
//   - rank[r] is an upper bound on the height of the tree rooted at r.
//   - count equals the number of roots.
//
// A Forest is not safe for concurrent use.
type Forest struct {
	parent []int
	rank   []int
	count  int
	opts   Options
}

// New returns a forest of n singleton sets.
// Complexity: O(n).
func New(n int, opts ...Option) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("disjointset: New(%d): %w", n, ErrNegativeSize)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
		opts:   cfg,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f, nil
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Components returns the current number of disjoint sets.
func (f *Forest) Components() int { return f.count }

// Find returns the representative of v's set.
//
// The root is located by an explicit walk; with path compression enabled a
// second walk re-points every node on the path directly at the root. Neither
// pass recurses, so long chains cannot exhaust the stack.
//
// Complexity: amortized O(α(n)) with both heuristics enabled.
func (f *Forest) Find(v int) (int, error) {
	if err := f.check(v); err != nil {
		return 0, err
	}

	return f.find(v), nil
}

// Union merges the sets of a and b.
// merged is false when a and b were already connected.
//
// The lower-rank root goes under the higher-rank root; on a tie the root of
// a becomes the parent and its rank grows by one.
func (f *Forest) Union(a, b int) (merged bool, err error) {
	if err = f.check(a); err != nil {
		return false, err
	}
	if err = f.check(b); err != nil {
		return false, err
	}

	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return false, nil
	}
	f.link(ra, rb)
	f.count--

	return true, nil
}

// Connected reports whether a and b are in the same set.
func (f *Forest) Connected(a, b int) (bool, error) {
	if err := f.check(a); err != nil {
		return false, err
	}
	if err := f.check(b); err != nil {
		return false, err
	}

	return f.find(a) == f.find(b), nil
}

// Rank returns the rank of v's root.
func (f *Forest) Rank(v int) (int, error) {
	if err := f.check(v); err != nil {
		return 0, err
	}

	return f.rank[f.find(v)], nil
}

// Sets returns the members of every set. Members are ascending within a
// set and sets are ordered by their smallest member.
// Complexity: O(n α(n)).
func (f *Forest) Sets() [][]int {
	byRoot := make(map[int]int, f.count) // root -> index in out
	out := make([][]int, 0, f.count)
	for v := range f.parent {
		r := f.find(v)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(out)
			byRoot[r] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], v)
	}
	// Ascending visits keep each set sorted and order sets by smallest member.
	return out
}

func (f *Forest) check(v int) error {
	if v < 0 || v >= len(f.parent) {
		return fmt.Errorf("disjointset: element %d not in [0,%d): %w", v, len(f.parent), ErrOutOfRange)
	}

	return nil
}

// find assumes v is in range.
func (f *Forest) find(v int) int {
	root := v
	for f.parent[root] != root {
		root = f.parent[root]
	}
	if !f.opts.PathCompression {
		return root
	}
	for f.parent[v] != root {
		next := f.parent[v]
		f.parent[v] = root
		v = next
	}

	return root
}

// link attaches one of two distinct roots under the other.
func (f *Forest) link(ra, rb int) {
	if !f.opts.UnionByRank {
		f.parent[rb] = ra
		if f.rank[ra] <= f.rank[rb] {
			f.rank[ra] = f.rank[rb] + 1
		}
		return
	}

	switch {
	case f.rank[ra] < f.rank[rb]:
		f.parent[ra] = rb
	case f.rank[ra] > f.rank[rb]:
		f.parent[rb] = ra
	default:
		f.parent[rb] = ra
		f.rank[ra]++
	}
}

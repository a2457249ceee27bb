// Package disjointset implements a union-find (disjoint-set) forest over the
// integers 0..n-1, backed by two flat arrays instead of pointer trees.
//
// Heuristics
//
//   - Path compression: Find walks to the root, then walks the same path
//     again re-pointing every node directly at the root. Both walks are
//     loops, so arbitrarily long chains never deepen the call stack.
//   - Union by rank: the root with the smaller rank is attached under the
//     root with the larger rank; equal ranks attach b's root under a's and
//     increment a's rank.
//
// With both heuristics the amortized cost per operation is O(α(n)), where α
// is the inverse Ackermann function. Either heuristic can be disabled through
// WithoutPathCompression or WithoutUnionByRank; results stay correct, but
// the bound degrades to O(log n) per operation with only one heuristic and to
// O(n) worst case with neither.
//
// Errors:
//
//	ErrNegativeSize - New called with n < 0.
//	ErrOutOfRange   - element outside [0, n).
package disjointset

// SPDX-License-Identifier: MIT

package edge

// Less reports whether a must be extracted from a min-heap before b.
// A Less must be a strict weak ordering; use a total order when the
// extraction sequence has to be reproducible.
type Less[W Weight] func(a, b Edge[W]) bool

// ByWeight orders edges by ascending weight only.
// Equal-weight edges are incomparable, so their relative extraction order
// is left to the heap layout.
func ByWeight[W Weight]() Less[W] {
	return func(a, b Edge[W]) bool { return a.Weight < b.Weight }
}

// ByWeightThenEndpoints orders edges by ascending weight, then by From,
// then by To. It is a total order over distinct edge values, so two runs
// over the same multiset of edges extract them in the same sequence
// regardless of input order.
func ByWeightThenEndpoints[W Weight]() Less[W] {
	return func(a, b Edge[W]) bool {
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	}
}

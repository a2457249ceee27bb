// Package minheap provides a generic, array-backed binary min-heap whose
// ordering is supplied as a comparator at construction time.
//
// What & Why
//
//   - The heap stores a complete binary tree in a flat slice; the parent of
//     index i is (i-1)/2. Every parent compares not-greater than its children.
//   - Ordering is decoupled from the element type: New and From take a
//     less(a, b) function, so the same heap serves edges ordered by weight,
//     by weight-then-endpoints, or by any caller-defined rule.
//   - Unlike container/heap, no interface boxing is involved and the
//     failure modes are explicit errors.
//
// Operations
//
//   - Push:  append, then sift up while smaller than the parent.   O(log n)
//   - Pop:   swap root with last, shrink, sift down to the smaller child. O(log n)
//   - Peek:  O(1)
//   - From:  bottom-up heapify over a copy of the input.            O(n)
//
// Capacity
//
// By default the heap grows on demand. WithCapacity(n) fixes a limit; an
// insertion past it returns ErrCapacityExceeded instead of dropping the
// element.
//
// Determinism
//
// For a fixed comparator and a fixed sequence of operations the pop order is
// always identical. When the comparator is a total order the pop order is
// also independent of insertion order.
//
// Errors:
//
//	ErrEmptyHeap        - Pop/Peek on an empty heap.
//	ErrCapacityExceeded - insertion beyond a fixed capacity.
//	ErrNilComparator    - New/From called with a nil less function.
package minheap

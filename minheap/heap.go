// SPDX-License-Identifier: MIT

package minheap

import "fmt"

// Heap is a binary min-heap stored as a complete tree in a flat slice:
// the children of index i live at 2i+1 and 2i+2.
//
// Invariant: for every i > 0, !less(items[i], items[parent(i)]).
//
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	items    []T
	less     func(a, b T) bool
	capacity int // 0 = unbounded
}

// New returns an empty heap ordered by less.
// Complexity: O(1), plus O(Prealloc) for the backing slice.
func New[T any](less func(a, b T) bool, opts ...Option) (*Heap[T], error) {
	if less == nil {
		return nil, ErrNilComparator
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	size := cfg.Prealloc
	if cfg.Capacity > 0 {
		size = cfg.Capacity
	}

	return &Heap[T]{
		items:    make([]T, 0, size),
		less:     less,
		capacity: cfg.Capacity,
	}, nil
}

// From builds a heap holding a copy of items using bottom-up heapify.
// The caller's slice is never modified.
//
// Returns ErrCapacityExceeded if a fixed capacity smaller than len(items)
// was requested.
//
// Complexity: O(n) time, O(n) space.
func From[T any](items []T, less func(a, b T) bool, opts ...Option) (*Heap[T], error) {
	h, err := New(less, opts...)
	if err != nil {
		return nil, err
	}
	if h.capacity > 0 && len(items) > h.capacity {
		return nil, fmt.Errorf("minheap: From(%d items) with capacity %d: %w",
			len(items), h.capacity, ErrCapacityExceeded)
	}

	h.items = append(h.items, items...)
	// Leaves are already heaps; sift down every internal node, last first.
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h, nil
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// Cap returns the fixed capacity, or 0 for a growable heap.
func (h *Heap[T]) Cap() int { return h.capacity }

// Push inserts x, placing it at the end and sifting it up.
// Complexity: O(log n).
func (h *Heap[T]) Push(x T) error {
	if h.capacity > 0 && len(h.items) >= h.capacity {
		return fmt.Errorf("minheap: Push at size %d: %w", len(h.items), ErrCapacityExceeded)
	}

	h.items = append(h.items, x)
	h.up(len(h.items) - 1)

	return nil
}

// Pop removes and returns the minimum element.
// The root is swapped with the last element, the slice shrinks, and the new
// root sifts down toward the smaller child.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyHeap
	}

	last := n - 1
	h.swap(0, last)
	top := h.items[last]
	h.items[last] = zero // drop the reference held by the backing array
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}

	return top, nil
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// Reset empties the heap, keeping its backing array and capacity policy.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// up sifts the element at i toward the root while it is smaller than its parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down sifts the element at i toward the leaves, always swapping with the
// smaller child, until neither child is smaller.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.less(h.items[right], h.items[left]) {
			smallest = right
		}
		if !h.less(h.items[smallest], h.items[i]) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[T]) swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

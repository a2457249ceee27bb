// SPDX-License-Identifier: MIT
// Package: spantree/minheap
//
// types.go - sentinel errors and functional options for the heap.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Push never drops an element silently: a full fixed-capacity heap
//     returns ErrCapacityExceeded.
//   - Option constructors panic on meaningless arguments; heap operations
//     never panic.

package minheap

import "errors"

var (
	// ErrEmptyHeap is returned by Pop and Peek when the heap holds no elements.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrCapacityExceeded is returned when an insertion would grow a
	// fixed-capacity heap beyond its limit.
	ErrCapacityExceeded = errors.New("minheap: capacity exceeded")

	// ErrNilComparator is returned when a heap is constructed without a less function.
	ErrNilComparator = errors.New("minheap: comparator is nil")
)

// Options configures a Heap before construction.
type Options struct {
	// Capacity is the fixed element limit; 0 means the heap grows on demand.
	Capacity int

	// Prealloc is the initial backing-slice capacity of a growable heap.
	Prealloc int
}

// Option mutates Options.
type Option func(*Options)

// WithCapacity fixes the heap size limit to n elements. Inserting beyond the
// limit returns ErrCapacityExceeded. WithCapacity(0) restores the default
// growable behavior. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("minheap: WithCapacity(n<0)")
	}

	return func(o *Options) { o.Capacity = n }
}

// WithPrealloc sizes the initial backing slice to n elements.
// It is a hint only and never limits growth. Panics if n < 0.
func WithPrealloc(n int) Option {
	if n < 0 {
		panic("minheap: WithPrealloc(n<0)")
	}

	return func(o *Options) { o.Prealloc = n }
}

// DefaultOptions returns a growable heap configuration with no preallocation.
func DefaultOptions() Options {
	return Options{}
}

package minheap_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/edge"
	"github.com/katalvlaran/spantree/minheap"
)

func intLess(a, b int) bool { return a < b }

// drain pops every element and returns them in extraction order.
func drain[T any](t *testing.T, h *minheap.Heap[T]) []T {
	t.Helper()
	out := make([]T, 0, h.Len())
	for h.Len() > 0 {
		x, err := h.Pop()
		require.NoError(t, err)
		out = append(out, x)
	}

	return out
}

func TestNew_NilComparator(t *testing.T) {
	_, err := minheap.New[int](nil)
	assert.ErrorIs(t, err, minheap.ErrNilComparator)

	_, err = minheap.From([]int{1}, nil)
	assert.ErrorIs(t, err, minheap.ErrNilComparator)
}

func TestPushPop_SortedOutput(t *testing.T) {
	h, err := minheap.New(intLess)
	require.NoError(t, err)

	in := []int{9, 4, 7, 1, 8, 2, 2, 6, 0, 5}
	for _, x := range in {
		require.NoError(t, h.Push(x))
	}
	assert.Equal(t, len(in), h.Len())

	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 0, top)

	want := append([]int(nil), in...)
	sort.Ints(want)
	assert.Equal(t, want, drain(t, h))
}

func TestPop_Empty(t *testing.T) {
	h, err := minheap.New(intLess)
	require.NoError(t, err)

	_, err = h.Pop()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)
	_, err = h.Peek()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)

	// Single element: pop, then empty again.
	require.NoError(t, h.Push(42))
	x, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42, x)
	_, err = h.Pop()
	assert.True(t, errors.Is(err, minheap.ErrEmptyHeap))
}

func TestCapacity_NoSilentDrop(t *testing.T) {
	h, err := minheap.New(intLess, minheap.WithCapacity(3))
	require.NoError(t, err)
	assert.Equal(t, 3, h.Cap())

	require.NoError(t, h.Push(3))
	require.NoError(t, h.Push(1))
	require.NoError(t, h.Push(2))

	err = h.Push(0)
	assert.ErrorIs(t, err, minheap.ErrCapacityExceeded)
	assert.Equal(t, 3, h.Len(), "rejected element must not be stored")
	assert.Equal(t, []int{1, 2, 3}, drain(t, h))

	// Room again after draining.
	assert.NoError(t, h.Push(7))
}

func TestFrom_Heapify(t *testing.T) {
	src := []int{5, 3, 8, 1, 9, 2, 7}
	orig := append([]int(nil), src...)

	h, err := minheap.From(src, intLess)
	require.NoError(t, err)
	assert.Equal(t, orig, src, "From must not mutate the caller's slice")
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, drain(t, h))

	_, err = minheap.From(src, intLess, minheap.WithCapacity(len(src)-1))
	assert.ErrorIs(t, err, minheap.ErrCapacityExceeded)

	empty, err := minheap.From[int](nil, intLess)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestReset(t *testing.T) {
	h, err := minheap.From([]int{3, 1, 2}, intLess, minheap.WithPrealloc(8))
	require.NoError(t, err)
	h.Reset()
	assert.Zero(t, h.Len())
	require.NoError(t, h.Push(4))
	assert.Equal(t, []int{4}, drain(t, h))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { minheap.WithCapacity(-1) })
	assert.Panics(t, func() { minheap.WithPrealloc(-1) })
}

// TestRandomized_MatchesSort interleaves pushes and pops against a sorted
// reference and checks every extraction.
func TestRandomized_MatchesSort(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	h, err := minheap.New(intLess)
	require.NoError(t, err)

	var ref []int
	for i := 0; i < 2000; i++ {
		if len(ref) == 0 || r.Intn(3) > 0 {
			x := r.Intn(100)
			require.NoError(t, h.Push(x))
			ref = append(ref, x)
			continue
		}
		sort.Ints(ref)
		got, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, ref[0], got, "step %d", i)
		ref = ref[1:]
	}
	assert.Equal(t, len(ref), h.Len())
}

// TestEdges_DeterministicTies shows that a total comparator yields the same
// extraction sequence for any insertion order of equal-weight edges.
func TestEdges_DeterministicTies(t *testing.T) {
	edges := []edge.Edge[int]{
		edge.New(2, 3, 4), edge.New(0, 3, 4), edge.New(1, 3, 4),
		edge.New(0, 1, 1), edge.New(0, 2, 4),
	}
	less := edge.ByWeightThenEndpoints[int]()

	first, err := minheap.From(edges, less)
	require.NoError(t, err)
	want := drain(t, first)

	r := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		shuffled := append([]edge.Edge[int](nil), edges...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		h, err := minheap.New[edge.Edge[int]](less)
		require.NoError(t, err)
		for _, e := range shuffled {
			require.NoError(t, h.Push(e))
		}
		assert.Equal(t, want, drain(t, h), "round %d", round)
	}

	assert.Equal(t, edge.New(0, 1, 1), want[0])
	assert.Equal(t, edge.New(0, 2, 4), want[1])
	assert.Equal(t, edge.New(2, 3, 4), want[4])
}

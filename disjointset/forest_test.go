package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/disjointset"
)

func mustForest(t *testing.T, n int, opts ...disjointset.Option) *disjointset.Forest {
	t.Helper()
	f, err := disjointset.New(n, opts...)
	require.NoError(t, err)

	return f
}

func mustFind(t *testing.T, f *disjointset.Forest, v int) int {
	t.Helper()
	r, err := f.Find(v)
	require.NoError(t, err)

	return r
}

func TestNew_Validation(t *testing.T) {
	_, err := disjointset.New(-1)
	assert.ErrorIs(t, err, disjointset.ErrNegativeSize)

	f := mustForest(t, 0)
	assert.Zero(t, f.Len())
	assert.Zero(t, f.Components())
	assert.Empty(t, f.Sets())
}

func TestSingletons(t *testing.T) {
	f := mustForest(t, 5)
	assert.Equal(t, 5, f.Components())
	for v := 0; v < 5; v++ {
		assert.Equal(t, v, mustFind(t, f, v))
		rank, err := f.Rank(v)
		require.NoError(t, err)
		assert.Zero(t, rank)
	}
}

func TestOutOfRange(t *testing.T) {
	f := mustForest(t, 3)

	_, err := f.Find(3)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	_, err = f.Find(-1)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	_, err = f.Union(0, 3)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	_, err = f.Union(-2, 0)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	_, err = f.Connected(0, 9)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	_, err = f.Rank(7)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
	assert.Equal(t, 3, f.Components(), "failed calls must not mutate")
}

func TestUnion_MergedAndAlreadyConnected(t *testing.T) {
	f := mustForest(t, 4)

	merged, err := f.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = f.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, merged, "second union of the same pair is a no-op")

	merged, err = f.Union(2, 2)
	require.NoError(t, err)
	assert.False(t, merged, "self union is a no-op")

	ok, err := f.Connected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.Connected(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 3, f.Components())
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, f.Sets())
}

func TestUnion_ByRank(t *testing.T) {
	f := mustForest(t, 4)

	// Equal ranks: root of a becomes parent, rank grows.
	_, _ = f.Union(0, 1)
	assert.Equal(t, 0, mustFind(t, f, 1))
	rank, _ := f.Rank(0)
	assert.Equal(t, 1, rank)

	// Lower-rank singleton goes under the rank-1 root even as argument a.
	_, _ = f.Union(2, 0)
	assert.Equal(t, 0, mustFind(t, f, 2))
	rank, _ = f.Rank(2)
	assert.Equal(t, 1, rank, "rank must not grow when ranks differ")
}

func TestFind_CompressesPath(t *testing.T) {
	const n = 6
	// Without union by rank, Union(i, i+1) for descending i builds the chain
	// 5 -> 4 -> 3 -> 2 -> 1 -> 0 because b's root always goes under a's.
	f := mustForest(t, n, disjointset.WithoutUnionByRank())
	for i := n - 2; i >= 0; i-- {
		merged, err := f.Union(i, i+1)
		require.NoError(t, err)
		require.True(t, merged)
	}
	require.Equal(t, 4, f.Parent(5), "chain expected before compression")

	root := mustFind(t, f, n-1)
	assert.Equal(t, 0, root)
	for v := 1; v < n; v++ {
		assert.Equal(t, 0, f.Parent(v), "vertex %d must point at the root", v)
	}
	assert.Equal(t, root, mustFind(t, f, n-1), "Find is idempotent")
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}}, f.Sets())
}

func TestFind_NoCompression(t *testing.T) {
	f := mustForest(t, 4, disjointset.WithoutPathCompression(), disjointset.WithoutUnionByRank())
	_, _ = f.Union(2, 3)
	_, _ = f.Union(1, 2)
	_, _ = f.Union(0, 1)

	assert.Equal(t, 0, mustFind(t, f, 3))
	assert.Equal(t, 2, f.Parent(3), "path must be left untouched")
}

func TestFind_LongChainNoRecursion(t *testing.T) {
	const n = 1 << 20
	f := mustForest(t, n, disjointset.WithoutUnionByRank())
	for i := n - 2; i >= 0; i-- {
		_, err := f.Union(i, i+1)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, mustFind(t, f, n-1))
	assert.Equal(t, 1, f.Components())
}

// TestRandomized_AgainstLabels compares the forest with a naive relabeling
// partition under every heuristic combination.
func TestRandomized_AgainstLabels(t *testing.T) {
	variants := map[string][]disjointset.Option{
		"both":         nil,
		"no-compress":  {disjointset.WithoutPathCompression()},
		"no-rank":      {disjointset.WithoutUnionByRank()},
		"no-heuristic": {disjointset.WithoutPathCompression(), disjointset.WithoutUnionByRank()},
	}
	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			const n = 60
			r := rand.New(rand.NewSource(3))
			f := mustForest(t, n, opts...)
			label := make([]int, n)
			for i := range label {
				label[i] = i
			}
			components := n

			for step := 0; step < 400; step++ {
				a, b := r.Intn(n), r.Intn(n)
				merged, err := f.Union(a, b)
				require.NoError(t, err)

				want := label[a] != label[b]
				require.Equal(t, want, merged, "step %d union(%d,%d)", step, a, b)
				if want {
					old := label[b]
					for i := range label {
						if label[i] == old {
							label[i] = label[a]
						}
					}
					components--
				}
				require.Equal(t, components, f.Components())

				x, y := r.Intn(n), r.Intn(n)
				ok, err := f.Connected(x, y)
				require.NoError(t, err)
				require.Equal(t, label[x] == label[y], ok)
			}
		})
	}
}

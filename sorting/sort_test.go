package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSortLargeArray_Properties verifies the output is non-decreasing and a
// permutation of the generated input for several sizes.
func TestSortLargeArray_Properties(t *testing.T) {
	const seed = 7
	for _, size := range []int{1, 2, 17, 1_000, 100_000} {
		got, err := sorting.SortLargeArray(size, sorting.Options{Seed: seed})
		require.NoError(t, err)
		require.Len(t, got, size)
		assert.True(t, sorting.IsSorted(got), "size=%d must be sorted", size)

		// the same seed regenerates the unsorted input
		input, err := sorting.RandomInt32s(size, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.True(t, sorting.IsPermutation(input, got), "size=%d must permute the input", size)
	}
}

// TestRandomInt32s_DefaultStream checks that a nil RNG and seed 0 share the
// default stream.
func TestRandomInt32s_DefaultStream(t *testing.T) {
	input, err := sorting.RandomInt32s(512, nil)
	require.NoError(t, err)

	got, err := sorting.SortLargeArray(512, sorting.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, sorting.IsPermutation(input, got))
}

func TestSortLargeArray_Empty(t *testing.T) {
	got, err := sorting.SortLargeArray(0, sorting.DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortLargeArray_NegativeSize(t *testing.T) {
	_, err := sorting.SortLargeArray(-1, sorting.DefaultOptions())
	assert.ErrorIs(t, err, sorting.ErrNegativeSize)

	_, err = sorting.RandomInt32s(-5, nil)
	assert.ErrorIs(t, err, sorting.ErrNegativeSize)
}

// TestSortLargeArray_Deterministic checks that a fixed seed reproduces the
// same array and that different seeds do not.
func TestSortLargeArray_Deterministic(t *testing.T) {
	a, err := sorting.SortLargeArray(4_096, sorting.Options{Seed: 99})
	require.NoError(t, err)
	b, err := sorting.SortLargeArray(4_096, sorting.Options{Seed: 99})
	require.NoError(t, err)
	c, err := sorting.SortLargeArray(4_096, sorting.Options{Seed: 100})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSort_Duplicates(t *testing.T) {
	in := []int32{5, -1, 5, 0, -2147483648, 2147483647, 0, 5}
	cp := append([]int32(nil), in...)

	sorting.Sort(cp)
	assert.Equal(t, []int32{-2147483648, -1, 0, 0, 5, 5, 5, 2147483647}, cp)
	assert.True(t, sorting.IsPermutation(in, cp))
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, sorting.IsPermutation(nil, []int32{}))
	assert.True(t, sorting.IsPermutation([]int32{1, 2, 2}, []int32{2, 1, 2}))
	assert.False(t, sorting.IsPermutation([]int32{1, 2, 2}, []int32{1, 1, 2}))
	assert.False(t, sorting.IsPermutation([]int32{1}, []int32{1, 1}))
}

func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSorted(nil))
	assert.True(t, sorting.IsSorted([]int32{-3, -3, 0, 9}))
	assert.False(t, sorting.IsSorted([]int32{1, 0}))
}

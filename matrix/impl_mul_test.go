package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul_MatchesGonum compares the Dense fast path with gonum on
// rectangular shapes.
func TestMul_MatchesGonum(t *testing.T) {
	shapes := [][3]int{{1, 1, 1}, {2, 3, 4}, {7, 5, 3}, {16, 16, 16}, {33, 1, 9}}
	for n, s := range shapes {
		a := mustDense(t, s[0], s[1])
		b := mustDense(t, s[1], s[2])
		fillDenseRand(t, a, int64(10+n))
		fillDenseRand(t, b, int64(20+n))

		got, err := matrix.Mul(a, b)
		require.NoError(t, err)
		requireMatchesGonum(t, a, b, got)
	}
}

// TestMul_GenericPath exercises the At/Set fallback with a non-Dense operand.
func TestMul_GenericPath(t *testing.T) {
	a := newRowMajor([][]int32{{1, 2}, {3, 4}})
	b, err := matrix.NewFilled(2, 3, 1)
	require.NoError(t, err)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{3, 3, 3}, {7, 7, 7}}, got.(*matrix.Dense).RowSlices())
	requireMatchesGonum(t, a, b, got)
}

func TestMul_Errors(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 2, 3)

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(a, typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_DoesNotMutateOperands guards the read-only contract.
func TestMul_DoesNotMutateOperands(t *testing.T) {
	a := mustDense(t, 3, 3)
	b := mustDense(t, 3, 3)
	fillDenseRand(t, a, 1)
	fillDenseRand(t, b, 2)
	aBefore, bBefore := a.RowSlices(), b.RowSlices()

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, aBefore, a.RowSlices())
	assert.Equal(t, bBefore, b.RowSlices())
}

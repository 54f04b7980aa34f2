package bench_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/numkit/bench"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/numeric"
	"github.com/katalvlaran/numkit/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPower(t *testing.T) {
	res, err := bench.Power(2, 10)
	require.NoError(t, err)
	assert.Equal(t, bench.RoutinePower, res.Name)
	assert.Equal(t, "power(2, 10) = 1024", res.Summary)
	assert.GreaterOrEqual(t, res.ElapsedMs, 0.0)

	_, err = bench.Power(2, -1)
	assert.ErrorIs(t, err, numeric.ErrNegativeExponent)
}

func TestFibonacci(t *testing.T) {
	res, err := bench.Fibonacci(50)
	require.NoError(t, err)
	assert.Equal(t, "fibonacci(50) = 12586269025", res.Summary)

	_, err = bench.Fibonacci(100)
	assert.ErrorIs(t, err, numeric.ErrOverflow)
}

func TestSort(t *testing.T) {
	res, err := bench.Sort(1_000, 5)
	require.NoError(t, err)
	assert.Contains(t, res.Summary, "sorted 1000 int32 values")

	res, err = bench.Sort(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "sorted 0 int32 values", res.Summary)

	_, err = bench.Sort(-1, 0)
	assert.ErrorIs(t, err, sorting.ErrNegativeSize)
}

func TestMatrix(t *testing.T) {
	res, err := bench.Matrix(context.Background(), 50, 2)
	require.NoError(t, err)
	assert.Equal(t, "multiplied 50x50 matrices, cell[0][0] = 100", res.Summary)

	res, err = bench.Matrix(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "multiplied 0x0 matrices", res.Summary)

	_, err = bench.Matrix(context.Background(), -2, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = bench.Matrix(context.Background(), 2, -1)
	assert.ErrorIs(t, err, bench.ErrInvalidCase)
}

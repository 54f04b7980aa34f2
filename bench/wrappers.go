package bench

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/numeric"
	"github.com/katalvlaran/numkit/sorting"
)

// Power times numeric.Power(base, exponent).
func Power(base, exponent int32) (Result, error) {
	return Measure(RoutinePower, func() (string, error) {
		v, err := numeric.Power(base, exponent)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("power(%d, %d) = %d", base, exponent, v), nil
	})
}

// Fibonacci times numeric.Fibonacci(n).
func Fibonacci(n int) (Result, error) {
	return Measure(RoutineFibonacci, func() (string, error) {
		v, err := numeric.Fibonacci(n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("fibonacci(%d) = %d", n, v), nil
	})
}

// Sort times generating and sorting size random int32 values.
func Sort(size int, seed int64) (Result, error) {
	return Measure(RoutineSort, func() (string, error) {
		out, err := sorting.SortLargeArray(size, sorting.Options{Seed: seed})
		if err != nil {
			return "", err
		}
		if len(out) == 0 {
			return "sorted 0 int32 values", nil
		}
		return fmt.Sprintf("sorted %d int32 values (min=%d, max=%d)", len(out), out[0], out[len(out)-1]), nil
	})
}

// Matrix times the size×size constant product on workers goroutines
// (0 = GOMAXPROCS). Negative workers yield ErrInvalidCase.
func Matrix(ctx context.Context, size, workers int) (Result, error) {
	return Measure(RoutineMatrix, func() (string, error) {
		if workers < 0 {
			return "", fmt.Errorf("workers %d: %w", workers, ErrInvalidCase)
		}
		rows, err := matrix.MultiplyConstants(ctx, size, matrix.WithWorkers(workers))
		if err != nil {
			return "", err
		}
		if len(rows) == 0 {
			return "multiplied 0x0 matrices", nil
		}
		return fmt.Sprintf("multiplied %dx%d matrices, cell[0][0] = %d", size, size, rows[0][0]), nil
	})
}

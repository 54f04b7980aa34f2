// Package matrix_test provides benchmarks for the multiplication kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkR [][]int32
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulParallel(b *testing.B) {
	b.ReportAllocs()
	ctx := context.Background()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 11)
			fillDenseRand(b, B, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MulParallel(ctx, A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyConstants(b *testing.B) {
	ctx := context.Background()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rows, err := matrix.MultiplyConstants(ctx, n)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = rows
			}
		})
	}
}

// Package matrix provides dense int32 matrices and the multiplication kernels
// numkit benchmarks: a sequential row-major kernel and a row-parallel one.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix backed by one flat []int32 slice, with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Mul, a sequential i-k-j product over any Matrix (fast path for *Dense).
//   - MulParallel, which maps output rows onto a bounded goroutine pool. Each
//     task owns exactly one output row, so no two tasks ever write the same
//     cell and no locking is needed.
//   - MultiplyConstants, the fixed workload "size×size of 1s times size×size
//     of 2s", whose every cell must equal 2*size.
//
// Cells are int32 and products wrap on overflow like plain int32 arithmetic.
//
// See the examples in this package for usage patterns.
package matrix

// SPDX-License-Identifier: MIT

// Package matrix - row-parallel multiplication.
//
// Model:
//   - One task per output row; tasks are submitted to an errgroup bounded by
//     Options.workers and picked up by whichever goroutine frees up first.
//   - Task i writes only res.data[i*cols:(i+1)*cols]; rows never overlap, so
//     the result needs no locking and is laid out by index on completion.
//   - Context cancellation stops scheduling new rows; rows already running
//     finish, and ctx.Err() is returned.
package matrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MulParallel returns a×b computed row-by-row on a bounded goroutine pool.
// The result is bit-identical to Mul(a, b).
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch from ValidateMulCompatible.
//   - ctx.Err() if the context is cancelled before all rows are scheduled.
//
// Complexity: O(n*m*p / workers) wall time, O(n*p) memory.
func MulParallel(ctx context.Context, a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	o := gatherOptions(opts...)

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < aRows; i++ {
		if gctx.Err() != nil {
			break
		}
		row := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mulRow(res.data[row*bCols:(row+1)*bCols], a.data[row*aCols:(row+1)*aCols], b.data, bCols)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	// Wait returns nil when the parent ctx is cancelled between rows but no
	// task observed it; report the cancellation instead of a partial result.
	if err = ctx.Err(); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// MultiplyConstants multiplies a size×size matrix of 1s by a size×size matrix
// of 2s and returns the product as row slices. Every cell equals 2*size.
//
// size == 0 yields an empty, non-nil result; size < 0 yields ErrInvalidDimensions.
func MultiplyConstants(ctx context.Context, size int, opts ...Option) ([][]int32, error) {
	if size < 0 {
		return nil, matrixErrorf(opConstants, fmt.Errorf("size %d: %w", size, ErrInvalidDimensions))
	}
	ones, err := Square(size, 1)
	if err != nil {
		return nil, matrixErrorf(opConstants, err)
	}
	twos, err := Square(size, 2)
	if err != nil {
		return nil, matrixErrorf(opConstants, err)
	}

	res, err := MulParallel(ctx, ones, twos, opts...)
	if err != nil {
		return nil, matrixErrorf(opConstants, err)
	}

	return res.RowSlices(), nil
}

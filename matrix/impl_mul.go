// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opConstants   = "MultiplyConstants"
)

// matrixErrorf tags err with the operation name, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a×b as a new matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate an a.Rows×b.Cols result (empty shapes allowed).
//   - Stage 3: *Dense fast path walks the flat buffers in i-k-j order so the
//     inner loop streams one row of b; other Matrix types fall back to At/Set.
//
// Behavior highlights:
//   - Operands are never mutated.
//   - Products and sums wrap on int32 overflow.
//
// Complexity: O(n*m*p) time, O(n*p) extra memory.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				mulRow(res.data[i*bCols:(i+1)*bCols], da.data[i*aCols:(i+1)*aCols], db.data, bCols)
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var (
		i, j, k int
		av, bv  int32
		current int32
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// mulRow accumulates rowA × B into dst, where B is a row-major buffer with
// bCols columns and len(rowA) rows. dst must be zeroed by the caller.
func mulRow(dst, rowA, b []int32, bCols int) {
	var (
		k, j int
		av   int32
		rowB []int32
	)
	for k = 0; k < len(rowA); k++ {
		av = rowA[k]
		if av == 0 {
			continue // skip zero for performance
		}
		rowB = b[k*bCols : (k+1)*bCols]
		for j = 0; j < bCols; j++ {
			dst[j] += av * rowB[j]
		}
	}
}

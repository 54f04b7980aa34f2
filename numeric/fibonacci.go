// SPDX-License-Identifier: MIT

package numeric

import "fmt"

// MaxFibonacciIndex is the largest n for which F(n) fits in int64.
// F(92) = 7540113804746346429; F(93) exceeds math.MaxInt64.
const MaxFibonacciIndex = 92

// Fibonacci returns F(n) with F(0)=0, F(1)=1 and F(n)=F(n-1)+F(n-2).
//
// Implementation:
//   - Stage 1: validate 0 ≤ n ≤ MaxFibonacciIndex.
//   - Stage 2: n ≤ 1 is returned as is.
//   - Stage 3: roll the pair (a, b) forward n-1 times.
//
// Returns ErrNegativeIndex for n < 0 and ErrOverflow for n > MaxFibonacciIndex.
//
// Complexity: O(n) time, O(1) space.
func Fibonacci(n int) (int64, error) {
	if err := validateIndex(n); err != nil {
		return 0, fmt.Errorf("Fibonacci(%d): %w", n, err)
	}
	if n <= 1 {
		return int64(n), nil
	}

	var a, b int64 = 0, 1
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}

	return b, nil
}

// FibonacciSequence returns the first n Fibonacci numbers F(0)..F(n-1).
// n == 0 yields an empty, non-nil slice.
//
// Complexity: O(n) time and memory.
func FibonacciSequence(n int) ([]int64, error) {
	// the last element is F(n-1), so n itself may be MaxFibonacciIndex+1
	if n < 0 {
		return nil, fmt.Errorf("FibonacciSequence(%d): %w", n, ErrNegativeIndex)
	}
	if n-1 > MaxFibonacciIndex {
		return nil, fmt.Errorf("FibonacciSequence(%d): %w", n, ErrOverflow)
	}

	seq := make([]int64, n)
	for i := range seq {
		switch i {
		case 0:
			seq[i] = 0
		case 1:
			seq[i] = 1
		default:
			seq[i] = seq[i-1] + seq[i-2]
		}
	}

	return seq, nil
}

func validateIndex(n int) error {
	if n < 0 {
		return ErrNegativeIndex
	}
	if n > MaxFibonacciIndex {
		return ErrOverflow
	}
	return nil
}

// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// Power returns base raised to exponent using exponent repeated
// multiplications, starting from 1.
//
// Behavior highlights:
//   - Power(b, 0) == 1 for every b, including 0.
//   - Overflow wraps around (two's complement), matching plain int32 arithmetic.
//
// Returns ErrNegativeExponent if exponent < 0.
//
// Complexity: O(exponent) time, O(1) space.
func Power(base, exponent int32) (int32, error) {
	if exponent < 0 {
		return 0, fmt.Errorf("Power(%d,%d): %w", base, exponent, ErrNegativeExponent)
	}

	var (
		result int32 = 1
		i      int32
	)
	for i = 0; i < exponent; i++ {
		result *= base // wraps on overflow by design of int32
	}

	return result, nil
}

// PowerChecked is the int64 counterpart of Power that reports ErrOverflow
// instead of wrapping. Bases 0, 1 and -1 are resolved without iterating;
// every other base performs one checked multiplication per exponent step.
//
// Complexity: O(exponent) time, O(1) space.
func PowerChecked(base, exponent int64) (int64, error) {
	if exponent < 0 {
		return 0, fmt.Errorf("PowerChecked(%d,%d): %w", base, exponent, ErrNegativeExponent)
	}

	// 0, 1 and -1 never overflow; resolve them without iterating.
	switch base {
	case 0:
		if exponent == 0 {
			return 1, nil
		}
		return 0, nil
	case 1:
		return 1, nil
	case -1:
		if exponent%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}

	var (
		result int64 = 1
		ok     bool
		i      int64
	)
	for i = 0; i < exponent; i++ {
		if result, ok = mulInt64(result, base); !ok {
			return 0, fmt.Errorf("PowerChecked(%d,%d): step %d: %w", base, exponent, i+1, ErrOverflow)
		}
	}

	return result, nil
}

// mulInt64 multiplies a and b and reports whether the product fits in int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 is the one case where the division check below lies.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

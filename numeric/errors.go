// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrNegativeExponent is returned when Power/PowerChecked receive exponent < 0.
	ErrNegativeExponent = errors.New("numeric: negative exponent")

	// ErrNegativeIndex is returned when a Fibonacci index is negative.
	ErrNegativeIndex = errors.New("numeric: negative index")

	// ErrOverflow signals that the exact result does not fit the return type.
	ErrOverflow = errors.New("numeric: integer overflow")
)

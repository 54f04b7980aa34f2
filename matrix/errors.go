// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with context via
// fmt.Errorf("...: %w")) and tests check them via errors.Is. No operation
// panics on user-triggered error conditions; option constructors panic only
// on programmer errors.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are invalid
	// (non-positive for NewDense, negative for Square/MultiplyConstants).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

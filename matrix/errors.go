// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors MUST return these sentinels and tests MUST check them via
// errors.Is. No method panics on user-triggered error conditions; Index is
// the single documented unchecked path.

package matrix

import "errors"

// NOTE ON PREFIXING
// -----------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with denseErrorf / validatorErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> nil -> index -> dimension mismatch -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested window does not fit the matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged rows in FromRows, or Equal/AllClose on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was written while the
	// finite-only policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument), or a
	// nil row in FromRows, reached an error-returning operation. The other
	// methods treat a nil matrix as empty; only Index panics.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

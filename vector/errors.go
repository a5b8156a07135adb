// SPDX-License-Identifier: MIT

// Package vector: sentinel errors.
// Every message is prefixed with "vector: ..."; match with errors.Is.
package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a checked access outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates Front/Back on a zero-length vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrDimensionMismatch indicates element-wise operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidLength indicates a negative requested length.
	ErrInvalidLength = errors.New("vector: length must be >= 0")
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxFront = "Front"
	ctxBack  = "Back"
	ctxAdd   = "Add"
	ctxSub   = "Sub"
	ctxZero  = "Zero"
)

// vectorErrorf wraps err with the receiver type, method and the offending
// integer argument (index or length).
func vectorErrorf(typ, method string, arg int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, arg, err)
}

// SPDX-License-Identifier: MIT

package cplx

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates a division by zero (scalar, imaginary or zero-norm complex).
	ErrDivisionByZero = errors.New("cplx: division by zero")
)

// cplxErrorf wraps err with the receiver type, operation and operands.
func cplxErrorf(typ, op string, lhs, rhs any, err error) error {
	return fmt.Errorf("%s.%s(%v,%v): %w", typ, op, lhs, rhs, err)
}

// SPDX-License-Identifier: MIT

package constant

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates Div or Mod with a zero-valued divisor.
	ErrDivisionByZero = errors.New("constant: division by zero")
)

// constantErrorf wraps a sentinel with the operation and operand values.
func constantErrorf(op string, lhs, rhs any, err error) error {
	return fmt.Errorf("Constant.%s(%v,%v): %w", op, lhs, rhs, err)
}

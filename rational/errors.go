// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned whenever a zero denominator would be produced.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrSyntax is returned by UnmarshalText for malformed input.
	ErrSyntax = errors.New("rational: invalid syntax")
)

// rationalErrorf wraps err with the operation name and its operands.
func rationalErrorf(op string, lhs, rhs any, err error) error {
	return fmt.Errorf("Rational.%s(%v,%v): %w", op, lhs, rhs, err)
}

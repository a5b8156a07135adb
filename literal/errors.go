// SPDX-License-Identifier: MIT

package literal

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a literal without digits.
	ErrEmpty = errors.New("literal: empty literal")

	// ErrNotDecimal is returned when a character is not a decimal digit.
	ErrNotDecimal = errors.New("literal: not a decimal digit")

	// ErrOctal is returned for a leading zero followed by further digits.
	ErrOctal = errors.New("literal: octal literals are not supported")

	// ErrOverflow is returned when the value fits no kind of the requested family.
	ErrOverflow = errors.New("literal: value overflows the integer family")

	// ErrUnknownSuffix is returned when a suffixed literal names no known suffix.
	ErrUnknownSuffix = errors.New("literal: unknown suffix")

	// ErrInvalidKind is returned for a Kind outside the defined set.
	ErrInvalidKind = errors.New("literal: invalid kind")
)

// literalErrorf annotates err with the failing operation and its input.
func literalErrorf(op, lit string, err error) error {
	return fmt.Errorf("literal.%s(%q): %w", op, lit, err)
}

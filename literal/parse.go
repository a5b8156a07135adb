// SPDX-License-Identifier: MIT

package literal

import (
	"math/bits"
)

// Parse folds a string of decimal digits into its unsigned value and selects
// the narrowest kind, starting at start and widening through start's family,
// able to hold it.
//
// Steps:
//  1. Validate start, emptiness, the digit set and the leading zero rule.
//  2. Accumulate value = value*10 + digit in a uint64, rejecting overflow.
//  3. Widen from start until the value fits.
//
// Complexity: O(len(digits)).
func Parse(digits string, start Kind) (Value, error) {
	if !start.Valid() {
		return Value{}, literalErrorf("Parse", digits, ErrInvalidKind)
	}
	u, err := accumulate(digits)
	if err != nil {
		return Value{}, literalErrorf("Parse", digits, err)
	}

	k := start
	for !k.Fits(u) {
		next, ok := k.wider()
		if !ok {
			return Value{}, literalErrorf("Parse", digits, ErrOverflow)
		}
		k = next
	}

	return Value{kind: k, u: u}, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// literals known to be well-formed.
func MustParse(digits string, start Kind) Value {
	v, err := Parse(digits, start)
	if err != nil {
		panic(err)
	}

	return v
}

// accumulate validates digits and returns their value.
func accumulate(digits string) (uint64, error) {
	if digits == "" {
		return 0, ErrEmpty
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrNotDecimal
		}
	}
	if digits[0] == '0' && len(digits) > 1 {
		return 0, ErrOctal
	}

	var u uint64
	for i := 0; i < len(digits); i++ {
		hi, lo := bits.Mul64(u, 10)
		sum, carry := bits.Add64(lo, uint64(digits[i]-'0'), 0)
		if hi != 0 || carry != 0 {
			return 0, ErrOverflow
		}
		u = sum
	}

	return u, nil
}

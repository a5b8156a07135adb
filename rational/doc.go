// SPDX-License-Identifier: MIT

// Package rational implements exact fractions num/den over any Go integer type.
//
// Invariants (established by every constructor and preserved by every operation):
//   - gcd(|num|, den) == 1 (always reduced);
//   - den > 0 (the sign lives on the numerator);
//   - zero is 0/1.
//
// Because of these invariants two rationals are equal iff their fields are
// equal, so Rational values may be compared with == and used as map keys.
//
// Errors:
//   - ErrZeroDenominator  New with den == 0, Div by zero, Reciprocal/Pow of zero.
//   - ErrSyntax           UnmarshalText given something other than "n" or "n/d".
//
// Intermediate products are computed in T. Operands are cross-reduced first to
// keep them small, but overflow of T is not detected: the package is exact
// arithmetic, not arbitrary precision.
//
// Text form is "n/d" (MarshalText/UnmarshalText), so rationals round-trip
// through YAML and JSON as plain strings.
package rational

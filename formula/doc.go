// SPDX-License-Identifier: MIT

// Package formula implements the small number-theoretic and conversion
// formulas of smath.
//
// ✨ Contents:
//
//   - Parity & primality: IsEven, IsOdd, IsPrime (trial division by odd divisors).
//   - Divisibility: GCD (Euclid), LCM.
//   - Sequences: Factorial, Fibonacci (iterative, O(n)).
//   - Powers: Pow with integer exponents (exponentiation by squaring).
//   - Angles: Degrees, Radians.
//
// Sign policy:
//
//	GCD and LCM accept negative operands and always return a non-negative
//	result. Factorial and Fibonacci are undefined for negative n and return
//	ErrNegativeArgument instead of guessing.
//
// Overflow:
//
//	Results wrap silently in the operand type, as Go integer arithmetic does.
//	Pick a type wide enough for the expected range (e.g. 20! needs int64).
package formula

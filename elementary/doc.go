// SPDX-License-Identifier: MIT

// Package elementary computes square roots, exponentials, logarithms and the
// trigonometric and hyperbolic functions by converging iterations, without
// delegating to the platform's transcendental routines.
//
// 🚀 Why not package math?
//
//	Results here are deterministic and portable: every function is a short
//	sequence of IEEE additions, multiplications and divisions whose stopping
//	rule is derived from the precision of the operand type, not from a fixed
//	iteration count.
//
// ✨ Algorithms:
//
//   - Sqrt: Newton (Babylonian) iteration from a power-of-two seed; stops when
//     successive iterates stop changing at the type's precision.
//   - Exp:  x = k·ln2 + r reduction, Maclaurin series of e^r, scaled by 2^k.
//   - Log:  x = m·2^e reduction, 2·atanh((m−1)/(m+1)) series, plus e·ln2.
//   - Sin/Cos: reduction into [−π/2, π/2], Maclaurin series.
//   - Tan, Cot, Sec, Csc and the hyperbolic family derive from the above.
//
// Series are summed until the next term falls below Epsilon[F]·|sum|; the
// loop is additionally bounded by the mantissa width of F.
//
// Only bit-level helpers from package math (Frexp, Ldexp, IsNaN, IsInf, Round)
// are used, for range reduction.
//
// Precision:
//
//	Results are within a few ulp of the correctly rounded value over the
//	reduced ranges. Huge trigonometric arguments lose accuracy in the
//	reduction step; numerical-stability guarantees beyond that are out of scope.
package elementary

// SPDX-License-Identifier: MIT

// Package constant wraps an integer so arithmetic on it composes into new
// wrapped integers, and boolean-valued operators yield a Bool constant.
//
// Go has no value-parameterised generics, so the value cannot live in the
// type itself the way an integral-constant template would carry it. The
// wrapper is a one-word value type instead: it is free to copy, comparable
// with ==, and every operation is a pure function of its operands. When the
// operands are built from Go constants the compiler folds the whole
// expression.
//
// Operators:
//
//	unary:      Pos, Neg, Not
//	arithmetic: Add, Sub, Mul, Div, Mod      (Div/Mod return ErrDivisionByZero)
//	comparison: Eq, Ne, Lt, Le, Gt, Ge      → Bool
//	logical:    And, Or                      → Bool
//
// Functions mirror the plain-integer helpers: Abs, Min, Max, Pow, Sqr,
// IsEven, IsOdd, Factorial, and for unsigned constants IsPow2, Ceil2,
// Floor2, Log2p1.
//
// Usage:
//
//	a := constant.Of(88)
//	b := constant.Of(22)
//	a.Add(b).Eq(constant.Of(110)) // constant.True
package constant

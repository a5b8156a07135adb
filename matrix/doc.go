// SPDX-License-Identifier: MIT

// Package matrix provides a fixed-size H×W matrix over any numeric type.
//
// What & Why:
//
//	Matrix[T] is a row-major buffer whose shape is fixed at construction.
//	The surface is element access only: no arithmetic operators are defined.
//	Checked accessors (At/Set/Row) return sentinel errors instead of
//	panicking; Index is the unchecked fast path.
//
// Numeric policy:
//
//	With WithValidateNaNInf, float matrices reject NaN and ±Inf on every
//	write (FromRows, Set, Apply). The check is a no-op for integer T.
//
// Complexity:
//
//	New/FromRows/Clone: O(H·W). Height/Width/Size/At/Set/Index: O(1).
//	Row: O(W). Equal/AllClose/String: O(H·W). View: O(1).
package matrix

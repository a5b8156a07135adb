// SPDX-License-Identifier: MIT

// Package numeric holds the leaf helpers every other smath package builds on.
//
// 🚀 What lives here?
//
//   - Type sets: Integer, Signed, Unsigned, Float and Number, layered on
//     golang.org/x/exp/constraints so callers may pass named types (~int, ~float64).
//   - Direct-computation helpers: Abs, Min, Max, Sign, Clamp, Sqr, Sum, Mean.
//   - Float → integer conversions: Floor, Ceil, Round, Trunc.
//   - Limits: Epsilon, MantissaBits, BitSize, IsFloat, IsSigned, MaxValue.
//   - Approximate comparison: IsClose / Equals with functional options.
//   - Mathematical constants: E, Pi, Phi, Ln2, …
//
// ✨ Properties:
//
//   - Pure functions over by-value arguments: no allocations, no shared state,
//     safe to call from any goroutine.
//   - Generic over the numeric type so results keep the caller's type.
//
// Usage:
//
//	numeric.Min(4, -2, 9)          // -2
//	numeric.IsClose(0.1+0.2, 0.3)  // true
//	numeric.IsClose(1e-17, 0.0, numeric.WithAbsTolerance(1e-15)) // true
package numeric

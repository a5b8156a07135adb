// SPDX-License-Identifier: MIT

// Package smath is a small, dependency-light library of pure numeric
// building blocks: integer helpers, exact rationals, generic complex
// numbers, series-based elementary functions and fixed-size containers.
//
// What is smath?
//
//	A set of generic, allocation-free (where possible) functions and value
//	types that work for every Go integer and float type, named types included:
//		• numeric:    Abs/Min/Max/Clamp, rounding, limits, epsilon comparison
//		• bit:        IsPow2, Ceil2, Floor2, Log2p1
//		• formula:    parity, primality, GCD/LCM, factorial, Fibonacci, Pow
//		• elementary: Sqrt, Exp, Log, trigonometric & hyperbolic functions
//		• literal:    narrowest-fit integer literal parsing and suffixes
//		• constant:   integral-constant wrapper with a full operator set
//		• rational:   exact reduced fractions over any integer type
//		• cplx:       Imaginary and Complex over any numeric type
//		• vector:     fixed-length Vector and value Array
//		• matrix:     fixed-size H×W Matrix with checked access
//
// Guarantees:
//
//   - Pure functions: no global state, no I/O, no goroutines.
//   - No panics on user errors: contract violations (division by zero,
//     out-of-range access, negative factorial, malformed literals) return
//     sentinel errors matched with errors.Is. Unchecked Index accessors are
//     the one documented exception and panic like a slice index.
//   - Deterministic: identical inputs give bit-identical outputs.
//
// Packages depend on each other leaves-first:
//
//	numeric ← bit, formula, elementary ← constant, rational, cplx ← literal
//	numeric ← vector, matrix
//
// Quick example:
//
//	half := rational.MustNew(1, 2)
//	third := rational.MustNew(1, 3)
//	fmt.Println(half.Add(third)) // 5/6
//
//	go get github.com/katalvlaran/smath
package smath

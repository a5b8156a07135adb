// SPDX-License-Identifier: MIT

// Package numeric: mathematical constants.
// Untyped so they convert losslessly into float32 or float64 expressions.
package numeric

const (
	// E is Euler's number.
	E = 2.71828182845904523536028747135266249775724709369995957496696763

	// Log2E is log₂(e).
	Log2E = 1.44269504088896340735992468100189213742664595415298593413544940

	// Log10E is log₁₀(e).
	Log10E = 0.43429448190325182765112891891660508229439700580366656611445378

	// Ln2 is the natural logarithm of 2.
	Ln2 = 0.693147180559945309417232121458176568075500134360255254120680009

	// Ln10 is the natural logarithm of 10.
	Ln10 = 2.30258509299404568401799145468436420760110148862877297603332790

	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = 3.14159265358979323846264338327950288419716939937510582097494459

	// Phi is the golden ratio.
	Phi = 1.61803398874989484820458683436563811772030917980576286213544862
)

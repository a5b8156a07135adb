// SPDX-License-Identifier: MIT

// Package cplx provides Imaginary and Complex numbers over any numeric type,
// integers included.
//
// Go's built-in complex64/complex128 cover only floats; these generic types
// keep integer arithmetic exact (Gaussian integers) and carry a separate
// Imaginary type so that, for example, i·i yields a plain real T.
//
// Operand naming:
//
//	z.Add(w)      Complex  ∘ Complex
//	z.AddImag(i)  Complex  ∘ Imaginary
//	z.AddReal(x)  Complex  ∘ T
//	i.AddComplex(z), i.AddReal(x), i.Add(j) likewise for Imaginary.
//
// Division by a zero scalar, a zero imaginary or a complex of zero norm
// returns ErrDivisionByZero. Integer division truncates toward zero.
//
// Magnitudes (Abs) and Polar go through package elementary.
package cplx

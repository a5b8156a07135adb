// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"

	"github.com/katalvlaran/smath/numeric"
)

// Imaginary is a purely imaginary number v·i.
type Imaginary[T numeric.Number] struct {
	v T
}

// I returns v·i.
func I[T numeric.Number](v T) Imaginary[T] { return Imaginary[T]{v: v} }

// Value returns the coefficient of i.
func (i Imaginary[T]) Value() T { return i.v }

// Pos returns i unchanged.
func (i Imaginary[T]) Pos() Imaginary[T] { return i }

// Neg returns −i.
func (i Imaginary[T]) Neg() Imaginary[T] { return Imaginary[T]{v: -i.v} }

// Complex lifts i to 0 + i.
func (i Imaginary[T]) Complex() Complex[T] { return Complex[T]{im: i.v} }

// Equal reports exact equality.
func (i Imaginary[T]) Equal(o Imaginary[T]) bool { return i.v == o.v }

// String renders "vi".
func (i Imaginary[T]) String() string { return fmt.Sprintf("%vi", i.v) }

// ---------- with Imaginary ----------

// Add returns i + o.
func (i Imaginary[T]) Add(o Imaginary[T]) Imaginary[T] { return Imaginary[T]{v: i.v + o.v} }

// Sub returns i − o.
func (i Imaginary[T]) Sub(o Imaginary[T]) Imaginary[T] { return Imaginary[T]{v: i.v - o.v} }

// Mul returns i × o, which is real: (a·i)(b·i) = −ab.
func (i Imaginary[T]) Mul(o Imaginary[T]) T { return -(i.v * o.v) }

// Div returns i ÷ o, which is real: (a·i)/(b·i) = a/b.
func (i Imaginary[T]) Div(o Imaginary[T]) (T, error) {
	if o.v == 0 {
		return 0, cplxErrorf("Imaginary", "Div", i, o, ErrDivisionByZero)
	}

	return i.v / o.v, nil
}

// ---------- with a real scalar ----------

// AddReal returns x + i.
func (i Imaginary[T]) AddReal(x T) Complex[T] { return Complex[T]{re: x, im: i.v} }

// SubReal returns i − x.
func (i Imaginary[T]) SubReal(x T) Complex[T] { return Complex[T]{re: -x, im: i.v} }

// MulReal returns i × x.
func (i Imaginary[T]) MulReal(x T) Imaginary[T] { return Imaginary[T]{v: i.v * x} }

// DivReal returns i ÷ x.
func (i Imaginary[T]) DivReal(x T) (Imaginary[T], error) {
	if x == 0 {
		return Imaginary[T]{}, cplxErrorf("Imaginary", "DivReal", i, x, ErrDivisionByZero)
	}

	return Imaginary[T]{v: i.v / x}, nil
}

// ---------- with Complex ----------

// AddComplex returns i + z.
func (i Imaginary[T]) AddComplex(z Complex[T]) Complex[T] { return i.Complex().Add(z) }

// SubComplex returns i − z.
func (i Imaginary[T]) SubComplex(z Complex[T]) Complex[T] { return i.Complex().Sub(z) }

// MulComplex returns i × z.
func (i Imaginary[T]) MulComplex(z Complex[T]) Complex[T] { return z.MulImag(i) }

// DivComplex returns i ÷ z.
func (i Imaginary[T]) DivComplex(z Complex[T]) (Complex[T], error) {
	q, err := i.Complex().Div(z)
	if err != nil {
		return Complex[T]{}, cplxErrorf("Imaginary", "DivComplex", i, z, ErrDivisionByZero)
	}

	return q, nil
}

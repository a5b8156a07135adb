// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/smath/elementary"
	"github.com/katalvlaran/smath/numeric"
)

// Complex is re + im·i. The zero value is 0.
type Complex[T numeric.Number] struct {
	re T
	im T
}

// New returns re + im·i.
func New[T numeric.Number](re, im T) Complex[T] { return Complex[T]{re: re, im: im} }

// FromImaginary returns re + i.
func FromImaginary[T numeric.Number](re T, i Imaginary[T]) Complex[T] {
	return Complex[T]{re: re, im: i.v}
}

// Real lifts x to x + 0i.
func Real[T numeric.Number](x T) Complex[T] { return Complex[T]{re: x} }

// Polar returns rho·(cos θ + i·sin θ).
func Polar[F numeric.Float](rho, theta F) Complex[F] {
	return Complex[F]{re: rho * elementary.Cos(theta), im: rho * elementary.Sin(theta)}
}

// Re returns the real part.
func (z Complex[T]) Re() T { return z.re }

// Imag returns the imaginary part.
func (z Complex[T]) Imag() Imaginary[T] { return Imaginary[T]{v: z.im} }

// ImagValue returns the coefficient of the imaginary part.
func (z Complex[T]) ImagValue() T { return z.im }

// Pos returns z unchanged.
func (z Complex[T]) Pos() Complex[T] { return z }

// Neg returns −z.
func (z Complex[T]) Neg() Complex[T] { return Complex[T]{re: -z.re, im: -z.im} }

// Conj returns the complex conjugate re − im·i.
func (z Complex[T]) Conj() Complex[T] { return Complex[T]{re: z.re, im: -z.im} }

// Norm returns re² + im², the squared magnitude.
func (z Complex[T]) Norm() T { return z.re*z.re + z.im*z.im }

// Abs returns the magnitude √Norm.
func (z Complex[T]) Abs() float64 { return elementary.Sqrt(float64(z.Norm())) }

// Complex128 converts z to Go's built-in complex type.
func (z Complex[T]) Complex128() complex128 { return complex(float64(z.re), float64(z.im)) }

// String renders "(re±imi)". A negative imaginary part (−0 included) prints
// its own sign; every other value, NaN included, gets an explicit '+'.
func (z Complex[T]) String() string {
	if z.im < 0 || (z.im == 0 && math.Signbit(float64(z.im))) {
		return fmt.Sprintf("(%v%vi)", z.re, z.im)
	}

	return fmt.Sprintf("(%v+%vi)", z.re, z.im)
}

// ---------- comparison ----------

// Equal reports exact equality.
func (z Complex[T]) Equal(w Complex[T]) bool { return z == w }

// EqualImag reports whether z has no real part and imaginary part i.
func (z Complex[T]) EqualImag(i Imaginary[T]) bool { return z.re == 0 && z.im == i.v }

// EqualReal reports whether z is the real number x.
func (z Complex[T]) EqualReal(x T) bool { return z.im == 0 && z.re == x }

// ---------- with Complex ----------

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] { return Complex[T]{re: z.re + w.re, im: z.im + w.im} }

// Sub returns z − w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] { return Complex[T]{re: z.re - w.re, im: z.im - w.im} }

// Mul returns z × w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z ÷ w = z·conj(w) / |w|², or ErrDivisionByZero when |w|² is 0.
func (z Complex[T]) Div(w Complex[T]) (Complex[T], error) {
	n := w.Norm()
	if n == 0 {
		return Complex[T]{}, cplxErrorf("Complex", "Div", z, w, ErrDivisionByZero)
	}

	return Complex[T]{
		re: (z.re*w.re + z.im*w.im) / n,
		im: (z.im*w.re - z.re*w.im) / n,
	}, nil
}

// ---------- with Imaginary ----------

// AddImag returns z + i.
func (z Complex[T]) AddImag(i Imaginary[T]) Complex[T] { return Complex[T]{re: z.re, im: z.im + i.v} }

// SubImag returns z − i.
func (z Complex[T]) SubImag(i Imaginary[T]) Complex[T] { return Complex[T]{re: z.re, im: z.im - i.v} }

// MulImag returns z × i: (a + bi)(ci) = −bc + aci.
func (z Complex[T]) MulImag(i Imaginary[T]) Complex[T] {
	return Complex[T]{re: -(z.im * i.v), im: z.re * i.v}
}

// DivImag returns z ÷ i: (a + bi)/(ci) = b/c − (a/c)i.
func (z Complex[T]) DivImag(i Imaginary[T]) (Complex[T], error) {
	if i.v == 0 {
		return Complex[T]{}, cplxErrorf("Complex", "DivImag", z, i, ErrDivisionByZero)
	}

	return Complex[T]{re: z.im / i.v, im: -(z.re / i.v)}, nil
}

// ---------- with a real scalar ----------

// AddReal returns z + x.
func (z Complex[T]) AddReal(x T) Complex[T] { return Complex[T]{re: z.re + x, im: z.im} }

// SubReal returns z − x.
func (z Complex[T]) SubReal(x T) Complex[T] { return Complex[T]{re: z.re - x, im: z.im} }

// MulReal returns z × x.
func (z Complex[T]) MulReal(x T) Complex[T] { return Complex[T]{re: z.re * x, im: z.im * x} }

// DivReal returns z ÷ x.
func (z Complex[T]) DivReal(x T) (Complex[T], error) {
	if x == 0 {
		return Complex[T]{}, cplxErrorf("Complex", "DivReal", z, x, ErrDivisionByZero)
	}

	return Complex[T]{re: z.re / x, im: z.im / x}, nil
}

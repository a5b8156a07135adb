// SPDX-License-Identifier: MIT

package rational

import (
	"github.com/katalvlaran/smath/formula"
	"github.com/katalvlaran/smath/numeric"
)

// Rational is a reduced fraction num/den with den > 0.
// The zero value is not usable as a fraction (den == 0); build values with
// New, MustNew or FromInt.
type Rational[T numeric.Integer] struct {
	num T
	den T
}

// New returns num/den in lowest terms, or ErrZeroDenominator.
func New[T numeric.Integer](num, den T) (Rational[T], error) {
	if den == 0 {
		return Rational[T]{}, rationalErrorf("New", num, den, ErrZeroDenominator)
	}

	return normalize(num, den), nil
}

// MustNew is like New but panics on a zero denominator.
func MustNew[T numeric.Integer](num, den T) Rational[T] {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1.
func FromInt[T numeric.Integer](n T) Rational[T] { return Rational[T]{num: n, den: 1} }

// Convert changes the underlying integer type. Values U cannot hold wrap.
func Convert[U, T numeric.Integer](r Rational[T]) Rational[U] {
	return Rational[U]{num: U(r.num), den: U(r.den)}
}

// normalize reduces num/den and moves the sign onto the numerator. den != 0.
func normalize[T numeric.Integer](num, den T) Rational[T] {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational[T]{num: 0, den: 1}
	}
	g := formula.GCD(num, den)

	return Rational[T]{num: num / g, den: den / g}
}

// Num returns the numerator.
func (r Rational[T]) Num() T { return r.num }

// Den returns the denominator (always positive).
func (r Rational[T]) Den() T { return r.den }

// Pos returns r unchanged.
func (r Rational[T]) Pos() Rational[T] { return r }

// Neg returns −r.
func (r Rational[T]) Neg() Rational[T] { return Rational[T]{num: -r.num, den: r.den} }

// Sign returns −1, 0 or +1.
func (r Rational[T]) Sign() int { return numeric.Sign(r.num) }

// Abs returns |r|.
func (r Rational[T]) Abs() Rational[T] { return Rational[T]{num: numeric.Abs(r.num), den: r.den} }

// IsZero reports whether r == 0.
func (r Rational[T]) IsZero() bool { return r.num == 0 }

// Bool reports whether r is non-zero.
func (r Rational[T]) Bool() bool { return r.num != 0 }

// Reciprocal returns den/num, or ErrZeroDenominator for zero.
func (r Rational[T]) Reciprocal() (Rational[T], error) {
	if r.num == 0 {
		return Rational[T]{}, rationalErrorf("Reciprocal", r, nil, ErrZeroDenominator)
	}

	return normalize(r.den, r.num), nil
}

// Pow returns r raised to exp. A negative exponent inverts r first, which
// fails with ErrZeroDenominator for zero. Pow(0) is 1.
func (r Rational[T]) Pow(exp int) (Rational[T], error) {
	base := r
	if exp < 0 {
		inv, err := r.Reciprocal()
		if err != nil {
			return Rational[T]{}, rationalErrorf("Pow", r, exp, ErrZeroDenominator)
		}
		base, exp = inv, -exp
	}

	// num and den stay coprime under exponentiation.
	return Rational[T]{num: formula.Pow(base.num, exp), den: formula.Pow(base.den, exp)}, nil
}

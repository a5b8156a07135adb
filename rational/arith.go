// SPDX-License-Identifier: MIT

package rational

import "github.com/katalvlaran/smath/formula"

// Add returns r + o.
func (r Rational[T]) Add(o Rational[T]) Rational[T] {
	// a/b + c/d = (a·(l/b) + c·(l/d)) / l with l = lcm(b, d).
	g := formula.GCD(r.den, o.den)
	bd := r.den / g

	return normalize(r.num*(o.den/g)+o.num*bd, bd*o.den)
}

// Sub returns r − o.
func (r Rational[T]) Sub(o Rational[T]) Rational[T] { return r.Add(o.Neg()) }

// Mul returns r × o.
func (r Rational[T]) Mul(o Rational[T]) Rational[T] {
	if r.num == 0 || o.num == 0 {
		return Rational[T]{num: 0, den: 1}
	}
	// Cross-reduce so the products stay as small as possible.
	g1 := formula.GCD(r.num, o.den)
	g2 := formula.GCD(o.num, r.den)

	return normalize((r.num/g1)*(o.num/g2), (r.den/g2)*(o.den/g1))
}

// Div returns r ÷ o, or ErrZeroDenominator when o is zero.
func (r Rational[T]) Div(o Rational[T]) (Rational[T], error) {
	inv, err := o.Reciprocal()
	if err != nil {
		return Rational[T]{}, rationalErrorf("Div", r, o, ErrZeroDenominator)
	}

	return r.Mul(inv), nil
}

// AddInt returns r + n.
func (r Rational[T]) AddInt(n T) Rational[T] { return r.Add(FromInt(n)) }

// SubInt returns r − n.
func (r Rational[T]) SubInt(n T) Rational[T] { return r.Sub(FromInt(n)) }

// MulInt returns r × n.
func (r Rational[T]) MulInt(n T) Rational[T] { return r.Mul(FromInt(n)) }

// DivInt returns r ÷ n, or ErrZeroDenominator when n is zero.
func (r Rational[T]) DivInt(n T) (Rational[T], error) {
	if n == 0 {
		return Rational[T]{}, rationalErrorf("DivInt", r, n, ErrZeroDenominator)
	}

	return r.Div(FromInt(n))
}

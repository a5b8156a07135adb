// SPDX-License-Identifier: MIT

package constant

import (
	"github.com/katalvlaran/smath/bit"
	"github.com/katalvlaran/smath/formula"
	"github.com/katalvlaran/smath/numeric"
)

// Abs returns |c|.
func Abs[T numeric.Integer](c Constant[T]) Constant[T] { return Of(numeric.Abs(c.v)) }

// Min returns the smallest of its arguments. Ties may return either operand.
func Min[T numeric.Integer](first, second Constant[T], rest ...Constant[T]) Constant[T] {
	m := first
	if second.v < m.v {
		m = second
	}
	for _, c := range rest {
		if c.v < m.v {
			m = c
		}
	}

	return m
}

// Max returns the largest of its arguments. Ties may return either operand.
func Max[T numeric.Integer](first, second Constant[T], rest ...Constant[T]) Constant[T] {
	m := first
	if second.v > m.v {
		m = second
	}
	for _, c := range rest {
		if c.v > m.v {
			m = c
		}
	}

	return m
}

// Pow returns base raised to exp. A negative exponent truncates toward zero.
// Non-negative exponents use their full width, so a Constant[uint64]
// exponent above math.MaxInt64 is not mistaken for a negative one.
func Pow[T numeric.Integer](base, exp Constant[T]) Constant[T] {
	if exp.v < 0 {
		return Of(formula.Pow(base.v, int(exp.v)))
	}

	return Of(formula.PowUint(base.v, uint64(exp.v)))
}

// Sqr returns c × c.
func Sqr[T numeric.Integer](c Constant[T]) Constant[T] { return Of(numeric.Sqr(c.v)) }

// IsEven reports whether c is divisible by two.
func IsEven[T numeric.Integer](c Constant[T]) Bool { return Bool(formula.IsEven(c.v)) }

// IsOdd reports whether c is not divisible by two.
func IsOdd[T numeric.Integer](c Constant[T]) Bool { return Bool(formula.IsOdd(c.v)) }

// Factorial returns c!, or formula.ErrNegativeArgument for negative c.
func Factorial[T numeric.Integer](c Constant[T]) (Constant[T], error) {
	f, err := formula.Factorial(c.v)
	if err != nil {
		return Constant[T]{}, err
	}

	return Of(f), nil
}

// IsPow2 reports whether c is a power of two.
func IsPow2[U numeric.Unsigned](c Constant[U]) Bool { return Bool(bit.IsPow2(c.v)) }

// Ceil2 returns the smallest power of two not below c.
func Ceil2[U numeric.Unsigned](c Constant[U]) Constant[U] { return Of(bit.Ceil2(c.v)) }

// Floor2 returns the largest power of two not above c, or 0 for 0.
func Floor2[U numeric.Unsigned](c Constant[U]) Constant[U] { return Of(bit.Floor2(c.v)) }

// Log2p1 returns the bit length of c.
func Log2p1[U numeric.Unsigned](c Constant[U]) Constant[U] { return Of(bit.Log2p1(c.v)) }

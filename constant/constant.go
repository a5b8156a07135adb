// SPDX-License-Identifier: MIT

package constant

import (
	"strconv"

	"github.com/katalvlaran/smath/numeric"
)

// Constant carries an integer value of type T.
// The zero value is the constant 0. Two constants are equal under == iff
// their values are equal.
type Constant[T numeric.Integer] struct {
	v T
}

// Of wraps v.
func Of[T numeric.Integer](v T) Constant[T] { return Constant[T]{v: v} }

// Value unwraps the integer.
func (c Constant[T]) Value() T { return c.v }

// String renders the value in base 10.
func (c Constant[T]) String() string {
	if c.v < 0 {
		return strconv.FormatInt(int64(c.v), 10)
	}

	return strconv.FormatUint(uint64(c.v), 10)
}

// ---------- unary ----------

// Pos returns c unchanged (unary +).
func (c Constant[T]) Pos() Constant[T] { return c }

// Neg returns −c. Unsigned constants wrap.
func (c Constant[T]) Neg() Constant[T] { return Constant[T]{v: -c.v} }

// Not returns True iff c is zero (logical !).
func (c Constant[T]) Not() Bool { return Bool(c.v == 0) }

// ---------- arithmetic ----------

// Add returns c + o.
func (c Constant[T]) Add(o Constant[T]) Constant[T] { return Constant[T]{v: c.v + o.v} }

// Sub returns c − o.
func (c Constant[T]) Sub(o Constant[T]) Constant[T] { return Constant[T]{v: c.v - o.v} }

// Mul returns c × o.
func (c Constant[T]) Mul(o Constant[T]) Constant[T] { return Constant[T]{v: c.v * o.v} }

// Div returns c ÷ o truncated toward zero, or ErrDivisionByZero when o is 0.
func (c Constant[T]) Div(o Constant[T]) (Constant[T], error) {
	if o.v == 0 {
		return Constant[T]{}, constantErrorf("Div", c.v, o.v, ErrDivisionByZero)
	}

	return Constant[T]{v: c.v / o.v}, nil
}

// Mod returns the remainder of c ÷ o (sign follows c), or ErrDivisionByZero when o is 0.
func (c Constant[T]) Mod(o Constant[T]) (Constant[T], error) {
	if o.v == 0 {
		return Constant[T]{}, constantErrorf("Mod", c.v, o.v, ErrDivisionByZero)
	}

	return Constant[T]{v: c.v % o.v}, nil
}

// ---------- comparison ----------

// Eq reports c == o.
func (c Constant[T]) Eq(o Constant[T]) Bool { return Bool(c.v == o.v) }

// Ne reports c != o.
func (c Constant[T]) Ne(o Constant[T]) Bool { return Bool(c.v != o.v) }

// Lt reports c < o.
func (c Constant[T]) Lt(o Constant[T]) Bool { return Bool(c.v < o.v) }

// Le reports c <= o.
func (c Constant[T]) Le(o Constant[T]) Bool { return Bool(c.v <= o.v) }

// Gt reports c > o.
func (c Constant[T]) Gt(o Constant[T]) Bool { return Bool(c.v > o.v) }

// Ge reports c >= o.
func (c Constant[T]) Ge(o Constant[T]) Bool { return Bool(c.v >= o.v) }

// ---------- logical ----------

// And reports whether both c and o are non-zero.
func (c Constant[T]) And(o Constant[T]) Bool { return Bool(c.v != 0 && o.v != 0) }

// Or reports whether c or o is non-zero.
func (c Constant[T]) Or(o Constant[T]) Bool { return Bool(c.v != 0 || o.v != 0) }

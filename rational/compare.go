// SPDX-License-Identifier: MIT

package rational

// Cmp returns −1, 0 or +1 as r is less than, equal to or greater than o.
// Denominators are positive, so cross-multiplication preserves order.
func (r Rational[T]) Cmp(o Rational[T]) int {
	lhs, rhs := r.num*o.den, o.num*r.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// CmpInt compares r with the integer n.
func (r Rational[T]) CmpInt(n T) int { return r.Cmp(FromInt(n)) }

// Equal reports r == o.
func (r Rational[T]) Equal(o Rational[T]) bool { return r.num == o.num && r.den == o.den }

// EqualInt reports r == n.
func (r Rational[T]) EqualInt(n T) bool { return r.den == 1 && r.num == n }

// Less reports r < o.
func (r Rational[T]) Less(o Rational[T]) bool { return r.Cmp(o) < 0 }

// LessEq reports r <= o.
func (r Rational[T]) LessEq(o Rational[T]) bool { return r.Cmp(o) <= 0 }

// Greater reports r > o.
func (r Rational[T]) Greater(o Rational[T]) bool { return r.Cmp(o) > 0 }

// GreaterEq reports r >= o.
func (r Rational[T]) GreaterEq(o Rational[T]) bool { return r.Cmp(o) >= 0 }

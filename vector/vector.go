// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/smath/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a fixed-length sequence of T.
//   - data holds exactly Len() elements; it is never resized or exposed.
type Vector[T numeric.Number] struct {
	data []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector[float64]{}

// New returns a vector holding a copy of elems.
// Complexity: O(n).
func New[T numeric.Number](elems ...T) Vector[T] {
	buf := make([]T, len(elems))
	copy(buf, elems)

	return Vector[T]{data: buf}
}

// Zero returns the zero vector of length n, or ErrInvalidLength for n < 0.
// Complexity: O(n).
func Zero[T numeric.Number](n int) (Vector[T], error) {
	if n < 0 {
		return Vector[T]{}, vectorErrorf("Vector", ctxZero, n, ErrInvalidLength)
	}

	return Vector[T]{data: make([]T, n)}, nil
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// MaxLen returns the largest length v can hold, which for a fixed-length
// vector is Len().
func (v Vector[T]) MaxLen() int { return len(v.data) }

// Empty reports whether Len() == 0.
func (v Vector[T]) Empty() bool { return len(v.data) == 0 }

// Index returns element i without a library-level check. Out-of-range i
// panics with Go's runtime bounds error.
func (v Vector[T]) Index(i int) T { return v.data[i] }

// At returns element i or ErrOutOfRange.
// Complexity: O(1).
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf("Vector", ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Front returns the first element or ErrEmpty.
func (v Vector[T]) Front() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf("Vector", ctxFront, 0, ErrEmpty)
	}

	return v.data[0], nil
}

// Back returns the last element or ErrEmpty.
func (v Vector[T]) Back() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf("Vector", ctxBack, 0, ErrEmpty)
	}

	return v.data[len(v.data)-1], nil
}

// Data returns a copy of the elements.
// Complexity: O(n).
func (v Vector[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Add returns v + o element-wise, or ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, vectorErrorf("Vector", ctxAdd, len(o.data), ErrDimensionMismatch)
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] + o.data[i]
	}

	return Vector[T]{data: out}, nil
}

// Sub returns v − o element-wise, or ErrDimensionMismatch.
// Complexity: O(n).
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if len(v.data) != len(o.data) {
		return Vector[T]{}, vectorErrorf("Vector", ctxSub, len(o.data), ErrDimensionMismatch)
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] - o.data[i]
	}

	return Vector[T]{data: out}, nil
}

// Equal reports whether v and o have the same length and identical elements.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// IsClose reports whether v and o have the same length and every pair of
// elements is numeric.IsClose under opts.
func (v Vector[T]) IsClose(o Vector[T], opts ...numeric.Option) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if !numeric.IsClose(v.data[i], o.data[i], opts...) {
			return false
		}
	}

	return true
}

// String renders "[a, b, c]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

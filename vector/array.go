// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/smath/numeric"

// Array is a value array: a fixed count of T with indexed access.
type Array[T numeric.Number] struct {
	values []T
}

// NewArray returns an array holding a copy of values.
func NewArray[T numeric.Number](values ...T) Array[T] {
	buf := make([]T, len(values))
	copy(buf, values)

	return Array[T]{values: buf}
}

// Len returns the element count.
func (a Array[T]) Len() int { return len(a.values) }

// Index returns element n unchecked (Go bounds panic when out of range).
func (a Array[T]) Index(n int) T { return a.values[n] }

// At returns element n or ErrOutOfRange.
func (a Array[T]) At(n int) (T, error) {
	if n < 0 || n >= len(a.values) {
		return 0, vectorErrorf("Array", ctxAt, n, ErrOutOfRange)
	}

	return a.values[n], nil
}

// Values returns a copy of the elements.
func (a Array[T]) Values() []T {
	out := make([]T, len(a.values))
	copy(out, a.values)

	return out
}

// Vector returns the elements as a Vector of the same length.
func (a Array[T]) Vector() Vector[T] { return New(a.values...) }

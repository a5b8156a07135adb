// SPDX-License-Identifier: MIT

// Package numeric: numeric limits resolved from the type parameter alone.
//
// Purpose:
//   - Give generic code the information C-style numeric_limits would carry:
//     width, signedness, machine epsilon and the largest representable value.
//
// Determinism & Performance:
//   - Each helper inspects a zero value of T; the compiler folds the result
//     for every instantiation. No reflection, no allocation.
package numeric

import (
	"math"
	"unsafe"
)

// BitSize reports the storage width of T in bits (8, 16, 32 or 64).
// Complexity: O(1).
func BitSize[T Number]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// IsFloat reports whether T is a floating-point type.
// Halving one truncates to zero only for integer types.
func IsFloat[T Number]() bool {
	var x T = 1
	x /= 2

	return x != 0
}

// IsSigned reports whether T can hold negative values.
// Decrementing zero wraps for unsigned types and goes negative otherwise.
func IsSigned[T Number]() bool {
	var x T
	x--

	return x < 0
}

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value (2⁻²³ for float32, 2⁻⁵² for float64).
func Epsilon[T Float]() T {
	if BitSize[T]() == 32 {
		return T(0x1p-23)
	}

	return T(0x1p-52)
}

// MantissaBits returns the significand precision of T including the
// implicit leading bit (24 for float32, 53 for float64).
func MantissaBits[T Float]() int {
	if BitSize[T]() == 32 {
		return 24
	}

	return 53
}

// MaxValue returns the largest value representable by the integer type T,
// widened to uint64 so every integer type shares one return type.
// Complexity: O(1).
func MaxValue[T Integer]() uint64 {
	bits := BitSize[T]()
	if IsSigned[T]() {
		return uint64(1)<<(bits-1) - 1
	}
	if bits == 64 {
		return math.MaxUint64
	}

	return uint64(1)<<bits - 1
}

// MinValue returns the smallest value representable by the integer type T,
// widened to int64. Unsigned types report 0.
func MinValue[T Integer]() int64 {
	if !IsSigned[T]() {
		return 0
	}
	bits := BitSize[T]()

	return -int64(uint64(1) << (bits - 1))
}

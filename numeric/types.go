// SPDX-License-Identifier: MIT

// Package numeric: type sets shared by all smath packages.
package numeric

import "golang.org/x/exp/constraints"

// Integer is any signed or unsigned integer type (named types included).
type Integer interface {
	constraints.Integer
}

// Signed is any signed integer type.
type Signed interface {
	constraints.Signed
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Float is float32 or float64 (named types included).
type Float interface {
	constraints.Float
}

// Number is any integer or floating-point type. Complex builtins are
// deliberately excluded; see package cplx for complex arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

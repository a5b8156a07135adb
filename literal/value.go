// SPDX-License-Identifier: MIT

package literal

import (
	"strconv"

	"github.com/katalvlaran/smath/numeric"
)

// Value is a parsed literal: its magnitude together with the kind selected for it.
// The zero Value has no kind and reports Kind() == 0.
type Value struct {
	kind Kind
	u    uint64
}

// Kind returns the kind selected by Parse.
func (v Value) Kind() Kind { return v.kind }

// Uint64 returns the value.
func (v Value) Uint64() uint64 { return v.u }

// Int64 returns the value as int64. Values above math.MaxInt64 (only possible
// for Uint64) wrap.
func (v Value) Int64() int64 { return int64(v.u) }

// String renders the value in base 10.
func (v Value) String() string { return strconv.FormatUint(v.u, 10) }

// As converts v to T, or returns ErrOverflow when T cannot represent it.
func As[T numeric.Integer](v Value) (T, error) {
	if v.u > numeric.MaxValue[T]() {
		return 0, literalErrorf("As", v.String(), ErrOverflow)
	}

	return T(v.u), nil
}

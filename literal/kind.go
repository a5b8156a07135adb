// SPDX-License-Identifier: MIT

package literal

import (
	"math"

	"github.com/katalvlaran/smath/numeric"
)

// Kind names a fixed-width integer type a literal can resolve to.
type Kind uint8

const (
	Int8 Kind = iota + 1
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	Int8:   "int8",
	Int16:  "int16",
	Int32:  "int32",
	Int64:  "int64",
	Uint8:  "uint8",
	Uint16: "uint16",
	Uint32: "uint32",
	Uint64: "uint64",
}

// Valid reports whether k is one of the eight defined kinds.
func (k Kind) Valid() bool { return k >= Int8 && k <= Uint64 }

// Signed reports whether k belongs to the signed family.
func (k Kind) Signed() bool { return k >= Int8 && k <= Int64 }

// Bits returns the width of k in bits, or 0 for an invalid kind.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		return 0
	}
}

// Max returns the largest value representable by k, or 0 for an invalid kind.
func (k Kind) Max() uint64 {
	switch {
	case !k.Valid():
		return 0
	case k == Uint64:
		return math.MaxUint64
	case k.Signed():
		return uint64(1)<<(k.Bits()-1) - 1
	default:
		return uint64(1)<<k.Bits() - 1
	}
}

// Fits reports whether u is representable by k.
func (k Kind) Fits(u uint64) bool { return k.Valid() && u <= k.Max() }

// String returns the Go type name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}

	return kindNames[k]
}

// wider returns the next kind of the same family, or false at the family top.
func (k Kind) wider() (Kind, bool) {
	if k == Int64 || k == Uint64 || !k.Valid() {
		return k, false
	}

	return k + 1, true
}

// KindOf maps the Go integer type T to its Kind.
// int and uint map by their platform width, uintptr maps to an unsigned kind.
func KindOf[T numeric.Integer]() Kind {
	var k Kind
	switch numeric.BitSize[T]() {
	case 8:
		k = Int8
	case 16:
		k = Int16
	case 32:
		k = Int32
	default:
		k = Int64
	}
	if !numeric.IsSigned[T]() {
		k += Uint8 - Int8
	}

	return k
}

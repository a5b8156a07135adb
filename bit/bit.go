// SPDX-License-Identifier: MIT

// Package bit provides power-of-two helpers over unsigned integers.
//
// Functions:
//   - IsPow2(x): whether x is a power of two.
//   - Ceil2(x): smallest power of two ≥ x (Ceil2(0) == 1).
//   - Floor2(x): largest power of two ≤ x (Floor2(0) == 0).
//   - Log2p1(x): 0 for x == 0, otherwise ⌊log₂ x⌋ + 1.
//
// All four are branch-light, allocation-free and generic over any unsigned
// type, named types included.
package bit

import (
	"math/bits"

	"github.com/katalvlaran/smath/numeric"
)

// IsPow2 reports whether x is a power of two. Zero is not.
func IsPow2[U numeric.Unsigned](x U) bool {
	return x != 0 && x&(x-1) == 0
}

// Ceil2 returns the smallest power of two ≥ x. Ceil2(0) is 1.
// When no power of two ≥ x fits in U the result wraps to 0.
func Ceil2[U numeric.Unsigned](x U) U {
	if x <= 1 {
		return 1
	}
	n := Log2p1(x - 1)
	if int(n) >= numeric.BitSize[U]() {
		return 0
	}

	return U(1) << n
}

// Floor2 returns the largest power of two ≤ x. Floor2(0) is 0.
func Floor2[U numeric.Unsigned](x U) U {
	if x == 0 {
		return 0
	}

	return U(1) << (Log2p1(x) - 1)
}

// Log2p1 returns the number of bits needed to represent x:
// 0 when x == 0, otherwise ⌊log₂ x⌋ + 1.
func Log2p1[U numeric.Unsigned](x U) U {
	return U(bits.Len64(uint64(x)))
}

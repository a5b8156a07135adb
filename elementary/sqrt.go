// SPDX-License-Identifier: MIT

package elementary

import (
	"math"

	"github.com/katalvlaran/smath/numeric"
)

// Sqrt returns the square root of x.
//
// Implementation:
//   - Stage 1: special values. NaN and negative x give NaN; ±0 and +Inf are returned as-is.
//   - Stage 2: seed with 2^⌊e/2⌋ where x = m·2^e, m ∈ [0.5, 1), so the
//     seed is within a factor of two of the root.
//   - Stage 3: Newton step g ← (g + x/g)/2 until g stops changing, or until it
//     bounces between two neighbouring values, bounded by MantissaBits[F] steps.
//
// Complexity: O(log MantissaBits) steps in practice (quadratic convergence).
func Sqrt[F numeric.Float](x F) F {
	switch {
	case x != x || x < 0:
		return F(math.NaN())
	case x == 0 || math.IsInf(float64(x), 1):
		return x
	}

	_, e := math.Frexp(float64(x))
	g := F(math.Ldexp(1, e/2))
	prev := g
	for i := 0; i < numeric.MantissaBits[F](); i++ {
		next := (g + x/g) / 2
		if next == g {
			break
		}
		if next == prev {
			// Two-cycle between neighbours: keep the smaller one.
			g = numeric.Min(g, next)

			break
		}
		prev, g = g, next
	}

	return g
}

// SPDX-License-Identifier: MIT

package elementary

import (
	"math"

	"github.com/katalvlaran/smath/numeric"
)

// Sin returns the sine of x (radians). NaN and ±Inf give NaN.
//
// x is first reduced into [−π, π], then folded into [−π/2, π/2] with
// sin(π − r) = sin r, where the Maclaurin series has no cancellation issue.
func Sin[F numeric.Float](x F) F {
	if !finite(x) {
		return F(math.NaN())
	}
	r := reduceTwoPi(x)
	halfPi := F(numeric.Pi / 2)
	switch {
	case r > halfPi:
		r = F(numeric.Pi) - r
	case r < -halfPi:
		r = -F(numeric.Pi) - r
	}

	return sinSeries(r)
}

// Cos returns the cosine of x (radians). NaN and ±Inf give NaN.
// Uses cos(−r) = cos r and cos(π − r) = −cos r to stay within [0, π/2].
func Cos[F numeric.Float](x F) F {
	if !finite(x) {
		return F(math.NaN())
	}
	r := numeric.Abs(reduceTwoPi(x))
	if r > F(numeric.Pi/2) {
		return -cosSeries(F(numeric.Pi) - r)
	}

	return cosSeries(r)
}

// Tan returns sin(x)/cos(x).
func Tan[F numeric.Float](x F) F { return Sin(x) / Cos(x) }

// Cot returns cos(x)/sin(x).
func Cot[F numeric.Float](x F) F { return Cos(x) / Sin(x) }

// Sec returns 1/cos(x).
func Sec[F numeric.Float](x F) F { return 1 / Cos(x) }

// Csc returns 1/sin(x).
func Csc[F numeric.Float](x F) F { return 1 / Sin(x) }

// reduceTwoPi maps x into [−π, π] by subtracting the nearest multiple of 2π.
func reduceTwoPi[F numeric.Float](x F) F {
	twoPi := F(2 * numeric.Pi)
	if numeric.Abs(x) <= F(numeric.Pi) {
		return x
	}
	n := math.Round(float64(x / twoPi))

	return x - F(n)*twoPi
}

// sinSeries sums x − x³/3! + x⁵/5! − … for |x| ≤ π/2.
func sinSeries[F numeric.Float](x F) F {
	eps := numeric.Epsilon[F]()
	x2 := x * x
	sum, term := x, x
	for n := 2; n <= 2*numeric.MantissaBits[F](); n += 2 {
		term *= -x2 / F(n*(n+1))
		sum += term
		if numeric.Abs(term) <= eps*numeric.Abs(sum) {
			break
		}
	}

	return sum
}

// cosSeries sums 1 − x²/2! + x⁴/4! − … for |x| ≤ π/2.
func cosSeries[F numeric.Float](x F) F {
	eps := numeric.Epsilon[F]()
	x2 := x * x
	sum, term := F(1), F(1)
	for n := 1; n <= 2*numeric.MantissaBits[F](); n += 2 {
		term *= -x2 / F(n*(n+1))
		sum += term
		if numeric.Abs(term) <= eps*numeric.Abs(sum) {
			break
		}
	}

	return sum
}

// finite reports whether x is neither NaN nor ±Inf.
func finite[F numeric.Float](x F) bool {
	return x == x && !math.IsInf(float64(x), 0)
}

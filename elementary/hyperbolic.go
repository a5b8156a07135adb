// SPDX-License-Identifier: MIT

package elementary

import (
	"math"

	"github.com/katalvlaran/smath/numeric"
)

// Sinh returns the hyperbolic sine of x.
// |x| < 1 uses the odd Maclaurin series to avoid the e^x − e^−x cancellation.
func Sinh[F numeric.Float](x F) F {
	if x != x || math.IsInf(float64(x), 0) {
		return x
	}
	if numeric.Abs(x) < 1 {
		eps := numeric.Epsilon[F]()
		x2 := x * x
		sum, term := x, x
		for n := 2; n <= 2*numeric.MantissaBits[F](); n += 2 {
			term *= x2 / F(n*(n+1))
			sum += term
			if numeric.Abs(term) <= eps*numeric.Abs(sum) {
				break
			}
		}

		return sum
	}

	return (Exp(x) - Exp(-x)) / 2
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[F numeric.Float](x F) F {
	if x != x {
		return x
	}

	return (Exp(x) + Exp(-x)) / 2
}

// Tanh returns the hyperbolic tangent of x.
// Large |x| saturate to ±1 through (1 − e^−2|x|)/(1 + e^−2|x|).
func Tanh[F numeric.Float](x F) F {
	switch {
	case x != x:
		return x
	case numeric.Abs(x) < 1:
		return Sinh(x) / Cosh(x)
	}
	t := Exp(-2 * numeric.Abs(x))
	r := (1 - t) / (1 + t)
	if x < 0 {
		return -r
	}

	return r
}

// Coth returns 1/tanh(x).
func Coth[F numeric.Float](x F) F { return 1 / Tanh(x) }

// Sech returns 1/cosh(x).
func Sech[F numeric.Float](x F) F { return 1 / Cosh(x) }

// Csch returns 1/sinh(x).
func Csch[F numeric.Float](x F) F { return 1 / Sinh(x) }

// SPDX-License-Identifier: MIT

// Package numeric: float → integer conversions.
//
// All four helpers work by integer truncation followed by a one-step
// correction, so they stay exact for every float whose integral part fits
// in an int. Values outside that range are implementation-defined, as with
// Go's own float-to-int conversion.
package numeric

// Trunc rounds x toward zero.
func Trunc[F Float](x F) int {
	return int(x)
}

// Floor returns the greatest integer ≤ x.
func Floor[F Float](x F) int {
	t := int(x)
	if F(t) > x {
		t--
	}

	return t
}

// Ceil returns the least integer ≥ x.
func Ceil[F Float](x F) int {
	t := int(x)
	if F(t) < x {
		t++
	}

	return t
}

// Round returns the nearest integer, rounding half away from zero.
func Round[F Float](x F) int {
	t := int(x)
	// The fractional part x − t is exact, so no x+0.5 double rounding.
	frac := x - F(t)
	switch {
	case frac >= 0.5:
		t++
	case frac <= -0.5:
		t--
	}

	return t
}

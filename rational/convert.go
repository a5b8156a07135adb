// SPDX-License-Identifier: MIT

package rational

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/smath/numeric"
)

// Trunc returns r rounded toward zero.
func (r Rational[T]) Trunc() T { return r.num / r.den }

// Floor returns the greatest integer ≤ r.
func (r Rational[T]) Floor() T {
	q := r.num / r.den
	if r.num%r.den != 0 && r.num < 0 {
		q--
	}

	return q
}

// Ceil returns the least integer ≥ r.
func (r Rational[T]) Ceil() T {
	q := r.num / r.den
	if r.num%r.den != 0 && r.num > 0 {
		q++
	}

	return q
}

// Round returns the nearest integer to r, halves rounded away from zero.
func (r Rational[T]) Round() T {
	q, rem := r.num/r.den, numeric.Abs(r.num%r.den)
	// |rem|/den >= 1/2  ⇔  |rem| >= den − |rem|
	if rem >= r.den-rem {
		if r.num < 0 {
			return q - 1
		}

		return q + 1
	}

	return q
}

// Float64 returns the nearest float64 to num/den.
func (r Rational[T]) Float64() float64 { return float64(r.num) / float64(r.den) }

// Float32 returns the nearest float32 to num/den.
func (r Rational[T]) Float32() float32 { return float32(r.Float64()) }

// String returns "num/den".
func (r Rational[T]) String() string {
	return formatInt(r.num) + "/" + formatInt(r.den)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational[T]) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "n" and "n/d"
// with optional surrounding spaces, and stores the reduced value.
func (r *Rational[T]) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	numText, denText, hasDen := strings.Cut(s, "/")

	num, err := parseInt[T](strings.TrimSpace(numText))
	if err != nil {
		return rationalErrorf("UnmarshalText", s, nil, ErrSyntax)
	}
	den := T(1)
	if hasDen {
		if den, err = parseInt[T](strings.TrimSpace(denText)); err != nil {
			return rationalErrorf("UnmarshalText", s, nil, ErrSyntax)
		}
	}

	v, err := New(num, den)
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// formatInt renders an integer of any width in base 10.
func formatInt[T numeric.Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}

// parseInt parses s into T honouring its signedness and width.
func parseInt[T numeric.Integer](s string) (T, error) {
	bits := numeric.BitSize[T]()
	if numeric.IsSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bits)

		return T(v), err
	}
	v, err := strconv.ParseUint(s, 10, bits)

	return T(v), err
}

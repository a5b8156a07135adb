// SPDX-License-Identifier: MIT

package literal

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/smath/constant"
	"github.com/katalvlaran/smath/cplx"
	"github.com/katalvlaran/smath/numeric"
	"github.com/katalvlaran/smath/rational"
)

// Separator splits a literal into its body and suffix.
const Separator = "_"

// Suffixes recognised by Constant, Rational and Imaginary.
const (
	SuffixInt       = "c"
	SuffixLong      = "cl"
	SuffixLongLong  = "cll"
	SuffixUint      = "cu"
	SuffixULong     = "cul"
	SuffixULongLong = "cull"
	SuffixRational  = "r"
	SuffixImaginary = "i"
)

// constantStarts maps integer-constant suffixes to the kind parsing starts from.
var constantStarts = map[string]Kind{
	SuffixInt:       Int32,
	SuffixLong:      Int64,
	SuffixLongLong:  Int64,
	SuffixUint:      Uint32,
	SuffixULong:     Uint64,
	SuffixULongLong: Uint64,
}

// Split cuts lit at its last separator. A literal without separator is
// reported with ErrUnknownSuffix.
func Split(lit string) (body, suffix string, err error) {
	i := strings.LastIndex(lit, Separator)
	if i < 0 {
		return "", "", literalErrorf("Split", lit, ErrUnknownSuffix)
	}

	return lit[:i], lit[i+len(Separator):], nil
}

// Constant parses an integer-constant literal such as "58_c" or "91_cul".
// The suffix picks the starting kind; the value then widens within its family.
func Constant(lit string) (Value, error) {
	body, suffix, err := Split(lit)
	if err != nil {
		return Value{}, err
	}
	start, ok := constantStarts[suffix]
	if !ok {
		return Value{}, literalErrorf("Constant", lit, ErrUnknownSuffix)
	}

	return Parse(body, start)
}

// ConstantOf parses digits straight into a constant of type T.
// Unlike Parse it never widens: a value T cannot hold is ErrOverflow.
func ConstantOf[T numeric.Integer](digits string) (constant.Constant[T], error) {
	v, err := Parse(digits, KindOf[T]())
	if err != nil {
		return constant.Constant[T]{}, err
	}
	t, err := As[T](v)
	if err != nil {
		return constant.Constant[T]{}, err
	}

	return constant.Of(t), nil
}

// Rational parses "n_r" or "n/d_r" into a reduced rational.
func Rational(lit string) (rational.Rational[int64], error) {
	body, suffix, err := Split(lit)
	if err != nil {
		return rational.Rational[int64]{}, err
	}
	if suffix != SuffixRational {
		return rational.Rational[int64]{}, literalErrorf("Rational", lit, ErrUnknownSuffix)
	}

	numDigits, denDigits, hasDen := strings.Cut(body, "/")
	num, err := parseInt64(numDigits)
	if err != nil {
		return rational.Rational[int64]{}, err
	}
	if !hasDen {
		return rational.FromInt(num), nil
	}
	den, err := parseInt64(denDigits)
	if err != nil {
		return rational.Rational[int64]{}, err
	}

	return rational.New(num, den)
}

// Imaginary parses a floating-point literal such as "2.5_i" into an imaginary number.
func Imaginary(lit string) (cplx.Imaginary[float64], error) {
	body, suffix, err := Split(lit)
	if err != nil {
		return cplx.Imaginary[float64]{}, err
	}
	if suffix != SuffixImaginary {
		return cplx.Imaginary[float64]{}, literalErrorf("Imaginary", lit, ErrUnknownSuffix)
	}
	if body == "" {
		return cplx.Imaginary[float64]{}, literalErrorf("Imaginary", lit, ErrEmpty)
	}
	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return cplx.Imaginary[float64]{}, literalErrorf("Imaginary", lit, ErrNotDecimal)
	}

	return cplx.I(f), nil
}

// parseInt64 parses digits in the signed family capped at int64.
func parseInt64(digits string) (int64, error) {
	v, err := Parse(digits, Int64)
	if err != nil {
		return 0, err
	}

	return v.Int64(), nil
}

// SPDX-License-Identifier: MIT

package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smath/constant"
	"github.com/katalvlaran/smath/literal"
	"github.com/katalvlaran/smath/rational"
)

func TestKind(t *testing.T) {
	assert.Equal(t, 8, literal.Int8.Bits())
	assert.Equal(t, 64, literal.Uint64.Bits())
	assert.True(t, literal.Int16.Signed())
	assert.False(t, literal.Uint16.Signed())
	assert.Equal(t, uint64(127), literal.Int8.Max())
	assert.Equal(t, uint64(255), literal.Uint8.Max())
	assert.Equal(t, uint64(1<<63-1), literal.Int64.Max())
	assert.Equal(t, ^uint64(0), literal.Uint64.Max())
	assert.Equal(t, "uint32", literal.Uint32.String())
	assert.Equal(t, "invalid", literal.Kind(0).String())
	assert.Equal(t, 0, literal.Kind(42).Bits())

	assert.Equal(t, literal.Int8, literal.KindOf[int8]())
	assert.Equal(t, literal.Int32, literal.KindOf[int32]())
	assert.Equal(t, literal.Uint16, literal.KindOf[uint16]())
	assert.Equal(t, literal.Uint64, literal.KindOf[uint64]())
}

func TestParse_Widening(t *testing.T) {
	tests := []struct {
		digits string
		start  literal.Kind
		want   literal.Kind
	}{
		{"0", literal.Int32, literal.Int32},
		{"58", literal.Int32, literal.Int32},
		{"2147483647", literal.Int32, literal.Int32},
		{"2147483648", literal.Int32, literal.Int64},
		{"1844674407370955161", literal.Int32, literal.Int64},
		{"127", literal.Int8, literal.Int8},
		{"128", literal.Int8, literal.Int16},
		{"40000", literal.Int8, literal.Int32},
		{"255", literal.Uint8, literal.Uint8},
		{"256", literal.Uint8, literal.Uint16},
		{"4294967296", literal.Uint32, literal.Uint64},
		{"18446744073709551615", literal.Uint64, literal.Uint64},
		{"5", literal.Int64, literal.Int64},
	}
	for _, tc := range tests {
		t.Run(tc.digits, func(t *testing.T) {
			v, err := literal.Parse(tc.digits, tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.Kind())
			assert.Equal(t, tc.digits, v.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		digits string
		start  literal.Kind
		want   error
	}{
		{"", literal.Int32, literal.ErrEmpty},
		{"12a", literal.Int32, literal.ErrNotDecimal},
		{"-1", literal.Int32, literal.ErrNotDecimal},
		{"0755", literal.Int32, literal.ErrOctal},
		{"00", literal.Int32, literal.ErrOctal},
		{"9223372036854775808", literal.Int32, literal.ErrOverflow},
		{"18446744073709551616", literal.Uint64, literal.ErrOverflow},
		{"99999999999999999999999", literal.Uint8, literal.ErrOverflow},
		{"1", literal.Kind(0), literal.ErrInvalidKind},
	}
	for _, tc := range tests {
		t.Run(tc.digits, func(t *testing.T) {
			_, err := literal.Parse(tc.digits, tc.start)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Panics(t, func() { literal.MustParse("08", literal.Int32) })
	assert.Equal(t, uint64(8), literal.MustParse("8", literal.Int32).Uint64())
}

func TestAs(t *testing.T) {
	v := literal.MustParse("300", literal.Int8)
	assert.Equal(t, literal.Int16, v.Kind())

	n, err := literal.As[int16](v)
	require.NoError(t, err)
	assert.Equal(t, int16(300), n)

	_, err = literal.As[uint8](v)
	assert.ErrorIs(t, err, literal.ErrOverflow)
	assert.Equal(t, int64(300), v.Int64())
}

func TestConstant_Suffixes(t *testing.T) {
	tests := []struct {
		lit   string
		kind  literal.Kind
		value uint64
	}{
		{"0_c", literal.Int32, 0},
		{"58_c", literal.Int32, 58},
		{"1844674407370955161_c", literal.Int64, 1844674407370955161},
		{"45_cl", literal.Int64, 45},
		{"52_cll", literal.Int64, 52},
		{"45_cu", literal.Uint32, 45},
		{"5000000000_cu", literal.Uint64, 5000000000},
		{"91_cul", literal.Uint64, 91},
		{"23_cull", literal.Uint64, 23},
	}
	for _, tc := range tests {
		t.Run(tc.lit, func(t *testing.T) {
			v, err := literal.Constant(tc.lit)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.value, v.Uint64())
		})
	}

	_, err := literal.Constant("12_q")
	assert.ErrorIs(t, err, literal.ErrUnknownSuffix)
	_, err = literal.Constant("12")
	assert.ErrorIs(t, err, literal.ErrUnknownSuffix)
	_, err = literal.Constant("012_c")
	assert.ErrorIs(t, err, literal.ErrOctal)
}

func TestConstantOf(t *testing.T) {
	c, err := literal.ConstantOf[int]("42")
	require.NoError(t, err)
	assert.Equal(t, constant.Of(42), c)
	assert.Equal(t, constant.Of(-42), c.Neg())

	_, err = literal.ConstantOf[int8]("200")
	assert.ErrorIs(t, err, literal.ErrOverflow)
}

func TestRationalAndImaginary(t *testing.T) {
	r, err := literal.Rational("3_r")
	require.NoError(t, err)
	assert.Equal(t, rational.FromInt(int64(3)), r)

	r, err = literal.Rational("4/2_r")
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.Num())
	assert.Equal(t, int64(1), r.Den())

	_, err = literal.Rational("1/0_r")
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
	_, err = literal.Rational("3_c")
	assert.ErrorIs(t, err, literal.ErrUnknownSuffix)

	i, err := literal.Imaginary("2.5_i")
	require.NoError(t, err)
	assert.Equal(t, 2.5, i.Value())

	_, err = literal.Imaginary("_i")
	assert.ErrorIs(t, err, literal.ErrEmpty)
	_, err = literal.Imaginary("x_i")
	assert.ErrorIs(t, err, literal.ErrNotDecimal)
}

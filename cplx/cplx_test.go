// SPDX-License-Identifier: MIT

package cplx_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smath/cplx"
	"github.com/katalvlaran/smath/numeric"
)

func TestConstruction(t *testing.T) {
	i1 := cplx.I(float32(5.8))
	assert.True(t, numeric.IsClose(float32(5.8), i1.Value()))

	c1 := cplx.New(float32(1.2), float32(2.5))
	assert.True(t, numeric.IsClose(float32(1.2), c1.Re()))
	assert.True(t, numeric.IsClose(float32(2.5), c1.ImagValue()))
	assert.Equal(t, cplx.I(float32(2.5)), c1.Imag())

	assert.Equal(t, cplx.New(3, 4), cplx.FromImaginary(3, cplx.I(4)))
	assert.Equal(t, cplx.New(7, 0), cplx.Real(7))
	assert.Equal(t, cplx.New(0, 2), cplx.I(2).Complex())
	assert.Equal(t, cplx.New(0, 0), cplx.Complex[int]{})
}

func TestUnaryAndComparison(t *testing.T) {
	imag0, imag1 := cplx.I(0), cplx.I(1)
	comp0, comp1 := cplx.New(5, 0), cplx.New(0, 1)

	assert.Equal(t, cplx.I(-1), imag1.Neg())
	assert.Equal(t, cplx.I(1), imag1.Pos())
	assert.Equal(t, cplx.New(5, 0), comp0.Pos())
	assert.Equal(t, cplx.New(-5, 0), comp0.Neg())

	assert.True(t, comp0.EqualReal(5))
	assert.False(t, comp0.EqualReal(3))
	assert.True(t, comp1.EqualImag(imag1))
	assert.False(t, comp0.EqualImag(imag1))
	assert.False(t, imag0.Equal(imag1))
	assert.False(t, comp0.Equal(comp1))
	assert.True(t, comp0.Equal(cplx.Real(5)))
}

func TestImaginaryArithmetic(t *testing.T) {
	a, b := cplx.I(3), cplx.I(-2)

	assert.Equal(t, cplx.I(1), a.Add(b))
	assert.Equal(t, cplx.I(5), a.Sub(b))
	assert.Equal(t, 6, a.Mul(b))
	assert.Equal(t, -1, cplx.I(1).Mul(cplx.I(1)))

	q, err := cplx.I(8).Div(cplx.I(2))
	require.NoError(t, err)
	assert.Equal(t, 4, q)
	_, err = a.Div(cplx.I(0))
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)

	assert.Equal(t, cplx.New(4, 3), a.AddReal(4))
	assert.Equal(t, cplx.New(-4, 3), a.SubReal(4))
	assert.Equal(t, cplx.I(12), a.MulReal(4))
	d, err := cplx.I(12).DivReal(4)
	require.NoError(t, err)
	assert.Equal(t, cplx.I(3), d)
	_, err = a.DivReal(0)
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)

	z := cplx.New(1, 1)
	assert.Equal(t, cplx.New(1, 4), a.AddComplex(z))
	assert.Equal(t, cplx.New(-1, 2), a.SubComplex(z))
	// 3i(1 + i) = −3 + 3i
	assert.Equal(t, cplx.New(-3, 3), a.MulComplex(z))
	// 2i / (1 + i) = 1 + i
	w, err := cplx.I(2).DivComplex(z)
	require.NoError(t, err)
	assert.Equal(t, cplx.New(1, 1), w)
	_, err = a.DivComplex(cplx.New(0, 0))
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)
}

func TestComplexArithmetic(t *testing.T) {
	z, w := cplx.New(-2, 4), cplx.New(3, -1)

	assert.Equal(t, cplx.New(1, 3), z.Add(w))
	assert.Equal(t, cplx.New(-5, 5), z.Sub(w))
	// (−2 + 4i)(3 − i) = −2 + 14i
	assert.Equal(t, cplx.New(-2, 14), z.Mul(w))

	q, err := cplx.New(-2, 14).Div(w)
	require.NoError(t, err)
	assert.Equal(t, z, q)
	_, err = z.Div(cplx.Complex[int]{})
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)

	assert.Equal(t, cplx.New(-2, 7), z.AddImag(cplx.I(3)))
	assert.Equal(t, cplx.New(-2, 1), z.SubImag(cplx.I(3)))
	// (−2 + 4i)(2i) = −8 − 4i
	assert.Equal(t, cplx.New(-8, -4), z.MulImag(cplx.I(2)))
	di, err := z.DivImag(cplx.I(2))
	require.NoError(t, err)
	assert.Equal(t, cplx.New(2, 1), di)
	_, err = z.DivImag(cplx.I(0))
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)

	assert.Equal(t, cplx.New(0, 4), z.AddReal(2))
	assert.Equal(t, cplx.New(-4, 4), z.SubReal(2))
	assert.Equal(t, cplx.New(-6, 12), z.MulReal(3))
	dr, err := z.DivReal(2)
	require.NoError(t, err)
	assert.Equal(t, cplx.New(-1, 2), dr)
	_, err = z.DivReal(0)
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)
}

func TestComplex_MatchesBuiltin(t *testing.T) {
	pairs := [][2]cplx.Complex[float64]{
		{cplx.New(1.5, -2.25), cplx.New(0.5, 3)},
		{cplx.New(-7.0, 0.1), cplx.New(2.0, -2)},
		{cplx.New(1e-3, 1e3), cplx.New(-4.0, 0)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		ca, cb := a.Complex128(), b.Complex128()

		m := a.Mul(b)
		assert.True(t, numeric.IsClose(real(ca*cb), m.Re(), numeric.WithEpsilon(1e-14)), "re %v*%v", a, b)
		assert.True(t, numeric.IsClose(imag(ca*cb), m.ImagValue(), numeric.WithEpsilon(1e-14)), "im %v*%v", a, b)
		q, err := a.Div(b)
		require.NoError(t, err)
		want := ca / cb
		assert.True(t, numeric.IsClose(real(want), q.Re(), numeric.WithEpsilon(1e-14)), "re %v/%v", a, b)
		assert.True(t, numeric.IsClose(imag(want), q.ImagValue(), numeric.WithEpsilon(1e-14)), "im %v/%v", a, b)
	}
}

func TestConjNormAbs(t *testing.T) {
	for _, z := range []cplx.Complex[float64]{
		cplx.New(3.0, 4.0), cplx.New(-1.5, 0.25), cplx.New(0.0, -2.0), cplx.New(1e-4, 7.0),
	} {
		assert.Equal(t, z, z.Conj().Conj())
		assert.Equal(t, z.Re(), z.Conj().Re())
		assert.Equal(t, -z.ImagValue(), z.Conj().ImagValue())
		assert.True(t, numeric.IsClose(z.Norm(), z.Abs()*z.Abs(), numeric.WithEpsilon(1e-14)), "norm %v", z)
		assert.True(t, numeric.IsClose(cmplx.Abs(z.Complex128()), z.Abs(), numeric.WithEpsilon(1e-14)), "abs %v", z)
		// z·conj(z) is real and equals the norm.
		p := z.Mul(z.Conj())
		assert.True(t, numeric.IsClose(z.Norm(), p.Re(), numeric.WithEpsilon(1e-14)))
		assert.True(t, numeric.IsClose(0.0, p.ImagValue(), numeric.WithAbsTolerance(1e-12)))
	}

	assert.Equal(t, 25, cplx.New(3, 4).Norm())
	assert.True(t, numeric.IsClose(5.0, cplx.New(3, 4).Abs()))
}

func TestPolar(t *testing.T) {
	z := cplx.Polar(2.0, numeric.Pi/2)
	opts := []numeric.Option{numeric.WithEpsilon(1e-14), numeric.WithAbsTolerance(1e-15)}
	assert.True(t, numeric.IsClose(0.0, z.Re(), opts...))
	assert.True(t, numeric.IsClose(2.0, z.ImagValue(), opts...))

	for _, theta := range []float64{-2.5, -0.3, 0, 0.7, 1.9, 3} {
		p := cplx.Polar(1.5, theta)
		want := cmplx.Rect(1.5, theta)
		assert.True(t, numeric.IsClose(real(want), p.Re(), opts...), "theta=%g", theta)
		assert.True(t, numeric.IsClose(imag(want), p.ImagValue(), opts...), "theta=%g", theta)
		assert.True(t, numeric.IsClose(1.5, p.Abs(), opts...))
	}
	assert.False(t, math.IsNaN(cplx.Polar(float32(1), float32(1)).Abs()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(-2+14i)", cplx.New(-2, 14).String())
	assert.Equal(t, "(1.5-0.5i)", cplx.New(1.5, -0.5).String())
	assert.Equal(t, "(1.5+2i)", cplx.New(1.5, 2).String())
	assert.Equal(t, "(3-1i)", cplx.New(3, -1).String())
	assert.Equal(t, "(0+0i)", cplx.Complex[int]{}.String())
	assert.Equal(t, "(1-0i)", cplx.New(1.0, math.Copysign(0, -1)).String())
	assert.Equal(t, "(1+NaNi)", cplx.New(1.0, math.NaN()).String())
	assert.Equal(t, "(7+3i)", fmt.Sprint(cplx.New(uint8(7), 3)))
	assert.Equal(t, "3i", cplx.I(3).String())
}

// SPDX-License-Identifier: MIT

package elementary

import (
	"math"

	"github.com/katalvlaran/smath/numeric"
)

// Cody–Waite split of ln2: ln2Hi has trailing zero bits so k·ln2Hi is exact
// for the k range Exp produces.
const (
	ln2Hi = 6.93147180369123816490e-01
	ln2Lo = 1.90821492927058770002e-10
)

// Beyond these bounds e^x is ±Inf/0 for every supported float type.
const (
	expOverflow  = 1000.0
	expUnderflow = -1100.0
)

// Exp returns e^x.
//
// Algorithm:
//  1. NaN → NaN; +Inf → +Inf; −Inf → 0; far out-of-range arguments short-circuit.
//  2. k = round(x/ln2), r = x − k·ln2 (Cody–Waite), so |r| ≤ ln2/2.
//  3. e^r = Σ rⁿ/n!, summed until the term is below Epsilon[F]·|sum|.
//  4. e^x = e^r · 2^k (exact scaling by Ldexp).
func Exp[F numeric.Float](x F) F {
	switch {
	case x != x:
		return x
	case x > expOverflow:
		return F(math.Inf(1))
	case x < expUnderflow:
		return 0
	}

	k := math.Round(float64(x) * numeric.Log2E)
	r := x - F(k*ln2Hi) - F(k*ln2Lo)

	return F(math.Ldexp(float64(expSeries(r)), int(k)))
}

// expSeries sums the Maclaurin series of e^r for small |r|.
func expSeries[F numeric.Float](r F) F {
	eps := numeric.Epsilon[F]()
	sum, term := F(1), F(1)
	for n := 1; n <= numeric.MantissaBits[F](); n++ {
		term *= r / F(n)
		sum += term
		if numeric.Abs(term) <= eps*numeric.Abs(sum) {
			break
		}
	}

	return sum
}

// Log returns the natural logarithm of x.
//
// Algorithm:
//  1. NaN and x < 0 → NaN; 0 → −Inf; +Inf → +Inf.
//  2. x = m·2^e with m ∈ [√½, √2).
//  3. ln m = 2·atanh(z) = 2·Σ z^(2k+1)/(2k+1), z = (m−1)/(m+1), |z| < 0.172.
//  4. ln x = ln m + e·ln2.
func Log[F numeric.Float](x F) F {
	switch {
	case x != x || x < 0:
		return F(math.NaN())
	case x == 0:
		return F(math.Inf(-1))
	case math.IsInf(float64(x), 1):
		return x
	}

	m, e := reduceLog(x)
	fe := F(e)

	return fe*F(ln2Hi) + (logSeries(m) + fe*F(ln2Lo))
}

// Log2 returns the base-2 logarithm of x. Exact powers of two give exact results.
func Log2[F numeric.Float](x F) F {
	if x > 0 && !math.IsInf(float64(x), 1) {
		frac, e := math.Frexp(float64(x))
		if frac == 0.5 {
			return F(e - 1)
		}
	}

	return Log(x) * F(numeric.Log2E)
}

// Log10 returns the base-10 logarithm of x.
func Log10[F numeric.Float](x F) F {
	return Log(x) * F(numeric.Log10E)
}

// reduceLog splits x into m ∈ [√½, √2) and e with x = m·2^e.
func reduceLog[F numeric.Float](x F) (F, int) {
	frac, e := math.Frexp(float64(x))
	if frac < math.Sqrt2/2 {
		frac *= 2
		e--
	}

	return F(frac), e
}

// logSeries returns ln m for m near 1 through the atanh series.
func logSeries[F numeric.Float](m F) F {
	eps := numeric.Epsilon[F]()
	z := (m - 1) / (m + 1)
	z2 := z * z
	sum, pow := z, z
	for k := 3; k <= 2*numeric.MantissaBits[F](); k += 2 {
		pow *= z2
		add := pow / F(k)
		sum += add
		if numeric.Abs(add) <= eps*numeric.Abs(sum) {
			break
		}
	}

	return 2 * sum
}

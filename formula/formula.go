// SPDX-License-Identifier: MIT

package formula

import "github.com/katalvlaran/smath/numeric"

// IsEven reports whether n is divisible by two. Works for negative n.
func IsEven[T numeric.Integer](n T) bool { return n%2 == 0 }

// IsOdd reports whether n is not divisible by two.
func IsOdd[T numeric.Integer](n T) bool { return !IsEven(n) }

// IsPrime reports whether n is a prime number.
//
// Algorithm:
//  1. n < 2 → false; 2 and 3 → true.
//  2. Even n → false.
//  3. Trial-divide by odd d while d ≤ n/d (d·d ≤ n without overflow).
//
// Complexity: O(√n).
func IsPrime[T numeric.Integer](n T) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if IsEven(n) {
		return false
	}
	for d := T(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// GCD returns the greatest common divisor of a and b by Euclid's algorithm
// (repeated remainder until zero). The result is never negative;
// GCD(0, 0) is 0.
func GCD[T numeric.Integer](a, b T) T {
	a, b = numeric.Abs(a), numeric.Abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple |a·b| / gcd(a, b).
// The result is 0 when either operand is 0.
// a is divided by the gcd before multiplying to delay overflow.
func LCM[T numeric.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return numeric.Abs(a / GCD(a, b) * b)
}

// GCDMixed is GCD over operands of different integer types. The result is
// carried in uint64, which holds the magnitude of every integer type,
// math.MinInt64 included.
func GCDMixed[T, U numeric.Integer](a T, b U) uint64 {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}

	return x
}

// LCMMixed is LCM over operands of different integer types, in uint64.
// Results above math.MaxUint64 wrap.
func LCMMixed[T, U numeric.Integer](a T, b U) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return magnitude(a) / GCDMixed(a, b) * magnitude(b)
}

// magnitude returns |x| as uint64 without overflowing on the most negative value.
func magnitude[T numeric.Integer](x T) uint64 {
	if x < 0 {
		return -uint64(int64(x))
	}

	return uint64(x)
}

// Factorial returns n! computed as the iterative product 2·3·…·n.
// 0! and 1! are 1. Negative n returns ErrNegativeArgument.
// Results that overflow T wrap; the loop stops before its counter could
// pass the largest value of T.
func Factorial[T numeric.Integer](n T) (T, error) {
	if n < 0 {
		return 0, ErrNegativeArgument
	}
	res := T(1)
	if n < 2 {
		return res, nil
	}
	for i := T(2); i < n; i++ {
		res *= i
	}

	return res * n, nil
}

// Fibonacci returns the n-th Fibonacci number with F(0) = 0 and F(1) = 1.
// Negative n returns ErrNegativeArgument.
// Complexity: O(n) time, O(1) space.
func Fibonacci[T numeric.Integer](n T) (T, error) {
	if n < 0 {
		return 0, ErrNegativeArgument
	}
	var prev, curr T = 0, 1
	for i := T(0); i < n; i++ {
		prev, curr = curr, prev+curr
	}

	return prev, nil
}

// Pow raises base to an integer exponent.
//
// Behavior highlights:
//   - exp == 0 yields 1, including 0⁰.
//   - exp > 0: exponentiation by squaring, O(log exp) multiplications.
//   - exp < 0 with a float base: 1 / base^|exp| (0 gives +Inf).
//   - exp < 0 with an integer base: the reciprocal truncated toward zero,
//     so 1 stays 1, −1 alternates sign, and every other base (0 included) gives 0.
func Pow[T numeric.Number](base T, exp int) T {
	if exp >= 0 {
		return PowUint(base, uint64(exp))
	}
	if numeric.IsFloat[T]() {
		return 1 / PowUint(base, uint64(-exp))
	}
	switch {
	case base == 1:
		return 1
	case numeric.IsSigned[T]() && base+1 == 0:
		if exp%2 == 0 {
			return 1
		}

		return base
	default:
		return 0
	}
}

// PowUint raises base to a non-negative exponent of any width by
// square-and-multiply, O(log exp) multiplications. Integer results wrap.
func PowUint[T numeric.Number](base T, exp uint64) T {
	res := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}

	return res
}

// Degrees converts an angle from radians to degrees.
func Degrees[F numeric.Float](radians F) F {
	return radians * F(180/numeric.Pi)
}

// Radians converts an angle from degrees to radians.
func Radians[F numeric.Float](degrees F) F {
	return degrees * F(numeric.Pi/180)
}

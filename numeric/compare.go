// SPDX-License-Identifier: MIT

// Package numeric: approximate ("close enough") comparison.
package numeric

// IsClose reports whether a and b are equal within tolerance.
//
// Implementation:
//   - Floats: |a−b| ≤ max(absTol, ε·max(|a|,|b|)), ε defaulting to Epsilon[T].
//   - Integers: exact equality; options are ignored.
//
// Behavior highlights:
//   - NaN is never close to anything, itself included.
//   - Equal infinities are close; opposite infinities are not.
func IsClose[T Number](a, b T, opts ...Option) bool {
	if !IsFloat[T]() {
		return a == b
	}
	eps := float64(Epsilon[float64]())
	if BitSize[T]() == 32 {
		eps = float64(Epsilon[float32]())
	}

	return closeFloat(float64(a), float64(b), eps, opts)
}

// Equals is an alias of IsClose kept for callers used to the older name.
func Equals[T Number](a, b T, opts ...Option) bool { return IsClose(a, b, opts...) }

// IsCloseMixed compares operands of different numeric types.
//
// Implementation:
//   - Both floats: epsilon comparison using the machine epsilon of the
//     narrower of the two types, evaluated in float64.
//   - Otherwise: exact equality. Integer pairs compare by value without
//     going through float64, so large int64/uint64 values stay exact.
func IsCloseMixed[T, U Number](a T, b U, opts ...Option) bool {
	fa, fb := IsFloat[T](), IsFloat[U]()
	switch {
	case fa && fb:
		eps := float64(Epsilon[float64]())
		if BitSize[T]() == 32 || BitSize[U]() == 32 {
			eps = float64(Epsilon[float32]())
		}

		return closeFloat(float64(a), float64(b), eps, opts)
	case fa || fb:
		return float64(a) == float64(b)
	default:
		return integersEqual(a, b)
	}
}

// closeFloat applies the relative/absolute tolerance policy in float64.
func closeFloat(a, b, machineEps float64, opts []Option) bool {
	if a == b {
		return true // exact hit, also covers equal infinities
	}
	o := gatherOptions(opts...)
	eps := o.eps
	if eps < 0 {
		eps = machineEps
	}
	diff := Abs(a - b)
	if isNonFinite(diff) {
		return false
	}
	tol := eps * Max(Abs(a), Abs(b))

	return diff <= Max(tol, o.absTol)
}

// integersEqual compares two integers of possibly different types exactly.
func integersEqual[T, U Number](a T, b U) bool {
	if a < 0 || b < 0 {
		if !(a < 0 && b < 0) {
			return false
		}

		return int64(a) == int64(b)
	}

	return uint64(a) == uint64(b)
}

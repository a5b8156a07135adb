// SPDX-License-Identifier: MIT

// Package numeric: direct-computation helpers.
package numeric

// Abs returns x if x ≥ 0, else −x.
// For the most negative signed value the result wraps, as in two's complement.
func Abs[T Number](x T) T {
	if x >= 0 {
		return x
	}

	return -x
}

// Min returns the smallest of two or more values.
//
// Implementation:
//   - The first two operands are compared; the smaller one is carried into
//     the comparison with the rest, left to right.
//   - On equality either operand is returned; both hold the same value.
//
// Complexity: O(n).
func Min[T Number](first, second T, rest ...T) T {
	best := first
	if second < best {
		best = second
	}
	for _, v := range rest {
		if v < best {
			best = v
		}
	}

	return best
}

// Max returns the largest of two or more values.
// Same reduction order and tie semantics as Min.
func Max[T Number](first, second T, rest ...T) T {
	best := first
	if second > best {
		best = second
	}
	for _, v := range rest {
		if v > best {
			best = v
		}
	}

	return best
}

// Sign returns +1 for positive x, −1 for negative x and 0 for zero.
// NaN reports 0.
func Sign[T Number](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Clamp limits v to the closed interval [lo, hi]. Assumes lo ≤ hi.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Sqr returns x·x.
func Sqr[T Number](x T) T { return x * x }

// Sum adds two or more values left to right.
func Sum[T Number](first, second T, rest ...T) T {
	total := first + second
	for _, v := range rest {
		total += v
	}

	return total
}

// Mean returns the arithmetic mean of values as float64.
// Returns ErrEmpty when no value is given.
func Mean[T Number](values ...T) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	var total float64
	for _, v := range values {
		total += float64(v)
	}

	return total / float64(len(values)), nil
}

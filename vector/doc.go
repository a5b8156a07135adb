// SPDX-License-Identifier: MIT

// Package vector provides fixed-length, immutable sequences of numbers.
//
// Purpose:
//   - Vector[T]: a length-N numeric vector whose length is fixed at
//     construction, with checked and unchecked element access and
//     element-wise Add/Sub.
//   - Array[T]: a value array with a fixed count of elements and indexed access.
//
// Access policy:
//   - Index(i) is unchecked: an out-of-range i panics like any Go slice index.
//   - At(i), Front(), Back() are checked and return ErrOutOfRange / ErrEmpty.
//
// Both types copy their input at construction and hand out copies from
// Data/Values, so a value is never mutated after it is built and may be
// shared freely between goroutines.
//
// Complexity quicksheet:
//   - New/NewArray/Data/Values: O(n); Index/At/Front/Back/Len: O(1); Add/Sub/Equal: O(n).
package vector

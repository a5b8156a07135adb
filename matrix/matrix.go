// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*w + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep deterministic traversal (fixed i→j loop order).
//   - Enforce the optional finite-only numeric policy from a single place (checkFinite).
//
// Complexity quicksheet:
//   - New: O(h*w) zero-init; At/Set/Index: O(1); Row: O(w); Clone: O(h*w); View: O(1).
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/smath/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxApply  = "Apply"
	ctxRows   = "FromRows"
	ctxView   = "View"
	ctxInduce = "Induced"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with the method name and the coordinates involved.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a fixed-size row-major matrix.
//   - h,w hold the shape (height = rows, width = columns), both > 0.
//   - data is a flat buffer of length h*w (offset = i*w + j).
//   - validateNaNInf rejects non-finite writes when true.
type Matrix[T numeric.Number] struct {
	h, w           int
	data           []T
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an h×w zero matrix.
// Returns ErrInvalidDimensions unless h > 0 and w > 0.
// Complexity: O(h*w).
func New[T numeric.Number](h, w int, opts ...Option) (*Matrix[T], error) {
	if h <= 0 || w <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Matrix[T]{
		h:              h,
		w:              w,
		data:           make([]T, h*w),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromRows builds a matrix from row slices, copying them.
// A nil row after the first reports ErrNilMatrix.
//
// Implementation:
//   - Stage 1: reject an empty outer slice or empty first row (ErrInvalidDimensions).
//   - Stage 2: every row must have the first row's length (ErrDimensionMismatch).
//   - Stage 3: copy row by row, applying the numeric policy.
//
// Complexity: O(h*w).
func FromRows[T numeric.Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := New[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < m.h; i++ {
		if err = ValidateVecLen(rows[i], m.w); err != nil {
			return nil, denseErrorf(ctxRows, i, len(rows[i]), err)
		}
		for j = 0; j < m.w; j++ {
			if err = m.checkFinite(rows[i][j]); err != nil {
				return nil, denseErrorf(ctxRows, i, j, err)
			}
		}
		copy(m.data[i*m.w:(i+1)*m.w], rows[i])
	}

	return m, nil
}

// Height returns the number of rows, 0 for a nil matrix.
func (m *Matrix[T]) Height() int {
	if m == nil {
		return 0
	}

	return m.h
}

// Width returns the number of columns, 0 for a nil matrix.
func (m *Matrix[T]) Width() int {
	if m == nil {
		return 0
	}

	return m.w
}

// Size returns Height()*Width().
func (m *Matrix[T]) Size() int { return m.Height() * m.Width() }

// Shape packs Height() and Width() into a single call.
func (m *Matrix[T]) Shape() (h, w int) { return m.Height(), m.Width() }

// indexOf computes the row-major offset or returns ErrNilMatrix / ErrOutOfRange.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	if row < 0 || row >= m.h {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.w {
		return 0, ErrOutOfRange
	}

	return row*m.w + col, nil
}

// checkFinite enforces the numeric policy for a single value.
// Integer values are always finite.
func (m *Matrix[T]) checkFinite(v T) error {
	if !m.validateNaNInf || !numeric.IsFloat[T]() {
		return nil
	}
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrNilMatrix / ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Index returns the value at (row, col) without bounds checks on either
// coordinate. Only the flat buffer bound is enforced, by the Go runtime.
func (m *Matrix[T]) Index(row, col int) T { return m.data[row*m.w+col] }

// Set stores v at (row, col) or returns ErrNilMatrix / ErrOutOfRange / ErrNaNInf.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i or ErrNilMatrix / ErrOutOfRange.
// Complexity: O(w).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.h {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.w)
	copy(out, m.data[i*m.w:(i+1)*m.w])

	return out, nil
}

// Diagonal returns a copy of the main diagonal.
// Errors: ErrDimensionMismatch when m is not square.
// Complexity: O(h).
func (m *Matrix[T]) Diagonal() ([]T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	out := make([]T, m.h)
	for i := range out {
		out[i] = m.data[i*m.w+i]
	}

	return out, nil
}

// Rows returns a copy of the contents as row slices.
// Complexity: O(h*w).
func (m *Matrix[T]) Rows() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.h)
	for i := range out {
		out[i] = make([]T, m.w)
		copy(out[i], m.data[i*m.w:(i+1)*m.w])
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy), or nil for nil.
// Complexity: O(h*w).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{h: m.h, w: m.w, data: cp, validateNaNInf: m.validateNaNInf}
}

// Equal reports whether m and o have the same shape and identical elements.
// A nil matrix equals only another nil matrix.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if ValidateSameShape(m, o) != nil {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether every pair of elements is numeric.IsClose under
// opts. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(h*w).
func (m *Matrix[T]) AllClose(o *Matrix[T], opts ...numeric.Option) (bool, error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return false, err
	}
	for i := range m.data {
		if !numeric.IsClose(m.data[i], o.data[i], opts...) {
			return false, nil
		}
	}

	return true, nil
}

// String renders one bracketed, comma-separated line per row.
// Complexity: O(h*w).
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.h; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.w
		for j = 0; j < m.w; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element in row-major order and stops early when f returns false.
// Complexity: O(h*w).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.h; i++ {
		base = i * m.w
		for j = 0; j < m.w; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place.
// Errors: ErrNilMatrix, ErrNaNInf. An ErrNaNInf abort leaves the elements already visited updated; for
// all-or-nothing semantics apply to a Clone and swap on success.
// Complexity: O(h*w).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(ctxApply, 0, 0, err)
	}
	var i, j, base int
	var nv T
	for i = 0; i < m.h; i++ {
		base = i * m.w
		for j = 0; j < m.w; j++ {
			nv = f(i, j, m.data[base+j])
			if err := m.checkFinite(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

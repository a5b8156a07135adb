// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/smath/numeric"
)

// View is a non-owning window [r0:r0+h, c0:c0+w) into a Matrix.
// Writes go through to the base and honour its numeric policy.
type View[T numeric.Number] struct {
	base   *Matrix[T]
	r0, c0 int
	h, w   int
}

// View creates a no-copy window over the same storage.
// Zero-area windows are legal. Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(1).
func (m *Matrix[T]) View(r0, c0, h, w int) (*View[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, h, w, err)
	}
	if r0 < 0 || c0 < 0 || h < 0 || w < 0 || r0+h > m.h || c0+w > m.w {
		return nil, fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, h, w, ErrBadShape)
	}

	return &View[T]{base: m, r0: r0, c0: c0, h: h, w: w}, nil
}

// Height returns the number of rows in the view.
func (v *View[T]) Height() int { return v.h }

// Width returns the number of columns in the view.
func (v *View[T]) Width() int { return v.w }

// At reads element (i,j) of the view or returns ErrOutOfRange.
func (v *View[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.h || j < 0 || j >= v.w {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.w+(v.c0+j)], nil
}

// Set writes element (i,j) of the view through to the base.
func (v *View[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.h || j < 0 || j >= v.w {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if err := v.base.checkFinite(val); err != nil {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, err)
	}
	v.base.data[(v.r0+i)*v.base.w+(v.c0+j)] = val

	return nil
}

// Induced copies the rows and columns at the given indices into a new
// matrix (duplicates allowed). Both index lists must be non-empty.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrOutOfRange.
// Complexity: O(len(rowsIdx)*len(colsIdx)).
func (m *Matrix[T]) Induced(rowsIdx, colsIdx []int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxInduce, err)
	}
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := New[T](rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.h {
			return nil, fmt.Errorf("Matrix.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.w {
				return nil, fmt.Errorf("Matrix.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.w+cj]
		}
	}

	return res, nil
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/smath/matrix"
)

// ExampleFromRows builds a 2×3 matrix and reads it back.
func ExampleFromRows() {
	a, err := matrix.FromRows([][]float64{
		{1.0, 2.5, 5.2},
		{2.0, 3.8, 6.8},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Height(), a.Width(), a.Size())

	v, _ := a.At(1, 2)
	fmt.Println(v)

	_, err = a.At(2, 0)
	fmt.Println(err)
	// Output:
	// 2 3 6
	// 6.8
	// Matrix.At(2,0): matrix: index out of range
}

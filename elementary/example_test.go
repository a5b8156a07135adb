// SPDX-License-Identifier: MIT

package elementary_test

import (
	"fmt"

	"github.com/katalvlaran/smath/elementary"
	"github.com/katalvlaran/smath/numeric"
)

// ExampleSqrt shows the Newton iteration settling on the correctly rounded root.
func ExampleSqrt() {
	fmt.Printf("%.11f\n", elementary.Sqrt(2.0))
	fmt.Println(elementary.Sqrt(float32(6.25)))
	// Output:
	// 1.41421356237
	// 2.5
}

// ExampleSin evaluates the series at a few landmark angles.
func ExampleSin() {
	fmt.Printf("%.6f\n", elementary.Sin(numeric.Pi/6.0))
	fmt.Printf("%.6f\n", elementary.Cos(numeric.Pi/3.0))
	fmt.Printf("%.6f\n", elementary.Tan(numeric.Pi/4.0))
	// Output:
	// 0.500000
	// 0.500000
	// 1.000000
}

// SPDX-License-Identifier: MIT

package rational_test

import (
	"fmt"

	"github.com/katalvlaran/smath/rational"
)

func ExampleRational_Add() {
	a := rational.MustNew(1, 2)
	b := rational.MustNew(1, 3)
	fmt.Println(a.Add(b))
	fmt.Println(rational.MustNew(4, -2))
	// Output:
	// 5/6
	// -2/1
}

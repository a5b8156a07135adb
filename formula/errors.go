// SPDX-License-Identifier: MIT

package formula

import "errors"

var (
	// ErrNegativeArgument indicates a function defined only for n ≥ 0 received n < 0.
	ErrNegativeArgument = errors.New("formula: argument must be non-negative")
)

// SPDX-License-Identifier: MIT

// Package numeric: sentinel errors.
// Every message is prefixed with "numeric: ..." so it greps cleanly.
// Callers match with errors.Is.
package numeric

import "errors"

var (
	// ErrEmpty is returned by aggregate helpers (Mean) given no values.
	ErrEmpty = errors.New("numeric: no values")
)

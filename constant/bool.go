// SPDX-License-Identifier: MIT

package constant

// Bool is the boolean-valued constant produced by comparison and logical
// operators.
type Bool bool

const (
	// True is the true constant.
	True Bool = true
	// False is the false constant.
	False Bool = false
)

// Value unwraps the bool.
func (b Bool) Value() bool { return bool(b) }

// Not returns the negation of b.
func (b Bool) Not() Bool { return !b }

// And returns b ∧ o.
func (b Bool) And(o Bool) Bool { return b && o }

// Or returns b ∨ o.
func (b Bool) Or(o Bool) Bool { return b || o }

// String returns "true" or "false".
func (b Bool) String() string {
	if b {
		return "true"
	}

	return "false"
}

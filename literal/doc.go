// SPDX-License-Identifier: MIT

// Package literal turns decimal digit strings into integers of the narrowest
// kind able to hold them, and builds typed values from suffixed literals.
//
// Kind selection:
//
//	signed family:   Int8  → Int16  → Int32  → Int64
//	unsigned family: Uint8 → Uint16 → Uint32 → Uint64
//
// Parse starts at the requested kind and widens through its family until the
// value fits. It never crosses families: a value too large for Int64 is an
// overflow even though it would fit in Uint64.
//
// Suffixed literals use "_" as separator:
//
//	"58_c"      Int32 (widening as needed)
//	"45_cl"     Int64          ("_cll" is accepted as a synonym)
//	"45_cu"     Uint32
//	"91_cul"    Uint64         ("_cull" is accepted as a synonym)
//	"3_r"       rational.Rational[int64] 3/1
//	"2.5_i"     cplx.Imaginary[float64]
//
// Errors (match with errors.Is):
//   - ErrEmpty          no digits.
//   - ErrNotDecimal     a character outside '0'..'9'.
//   - ErrOctal          a leading zero followed by more digits.
//   - ErrOverflow       the value exceeds the widest kind of the family.
//   - ErrUnknownSuffix  the suffix names no known literal.
//   - ErrInvalidKind    the start kind is not one of the eight defined kinds.
package literal

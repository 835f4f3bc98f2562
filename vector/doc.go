// Package vector provides an immutable, exact-precision vector type used
// as the numeric substrate of the linsys module.
//
// 🚀 What is vector?
//
//	A Vector is an ordered tuple of decimal scalars
//	(github.com/shopspring/decimal) supporting the arithmetic and the
//	geometric predicates a linear-system solver needs:
//	  • Add / Sub / Scale / Dot / Magnitude / Unit
//	  • IsZero, IsParallelTo, IsOrthogonalTo
//	  • bounds-checked indexing (At) and restartable iteration (Coords)
//
// ✨ Why decimals?
//
//	Gaussian elimination chains many row combinations; binary floating
//	point accumulates representation noise that breaks pivot detection.
//	Exact decimal arithmetic keeps every intermediate value faithful,
//	and a single shared tolerance (Epsilon(), 1e-10) absorbs the only
//	rounding source left: division and the decimal square root.
//
// All operations are pure: every method returns a fresh Vector and
// never mutates its receiver, so Vectors are safe to share across
// goroutines.
//
// Errors:
//
//	ErrDimensionMismatch - binary operation on vectors of different lengths.
//	ErrIndexOutOfRange   - At called with an index outside [0, Dimension).
//	ErrZeroVector        - Unit called on the zero vector.
//	ErrEmptyVector       - construction with no coordinates.
package vector

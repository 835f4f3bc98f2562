// Package vector: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// operation context via fmt.Errorf("...: %w", ErrX)); callers match
// with errors.Is. No vector operation panics on user input.

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates a binary operation over vectors of
	// different dimensions (Add, Sub, Dot, parallel/orthogonal tests).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfRange indicates At was called with an index outside
	// [0, Dimension).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrZeroVector indicates an operation that is undefined for the
	// zero vector (Unit).
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrEmptyVector indicates construction with zero coordinates.
	ErrEmptyVector = errors.New("vector: empty coordinate list")

	// ErrBadCoordinate indicates FromStrings received a token that does
	// not parse as a decimal number.
	ErrBadCoordinate = errors.New("vector: unparsable coordinate")
)

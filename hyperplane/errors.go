// Package hyperplane: sentinel error set, matched via errors.Is.

package hyperplane

import "errors"

var (
	// ErrNoOrientation indicates New was called with neither a
	// dimension nor a normal vector; the hyperplane would have no
	// ambient space to live in.
	ErrNoOrientation = errors.New("hyperplane: neither dimension nor normal vector provided")

	// ErrBadDimension indicates WithDimension received a non-positive
	// dimension, or WithNormal and WithDimension disagreed.
	ErrBadDimension = errors.New("hyperplane: invalid dimension")

	// ErrDimensionMismatch indicates a binary predicate over
	// hyperplanes of different ambient dimensions.
	ErrDimensionMismatch = errors.New("hyperplane: dimension mismatch")
)

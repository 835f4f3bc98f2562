// Package linsys: sentinel error set.
//
// Dimension and bounds failures are fatal to the operation that
// triggers them and always surface to the caller. The two
// solution-space classifications (ErrNoSolution, ErrInfiniteSolutions)
// are recoverable by design: Solve folds them into a Solution value
// and never returns them; only the lower-level Parametrize /
// CheckConsistent / CheckUniquelyDetermined paths expose them as
// errors, matched via errors.Is.

package linsys

import "errors"

var (
	// ErrEmptySystem indicates New was called with no hyperplanes.
	ErrEmptySystem = errors.New("linsys: system has no rows")

	// ErrNilRow indicates a nil *Hyperplane passed to New or SetRow.
	ErrNilRow = errors.New("linsys: nil hyperplane row")

	// ErrDimensionMismatch indicates a row whose ambient dimension
	// differs from the system's dimension (at construction or SetRow).
	ErrDimensionMismatch = errors.New("linsys: all rows must share one dimension")

	// ErrRowOutOfRange indicates a row index outside [0, Len).
	ErrRowOutOfRange = errors.New("linsys: row index out of range")

	// ErrNoSolution classifies a contradictory system: some row reduced
	// to 0 = c with c outside epsilon of zero.
	ErrNoSolution = errors.New("linsys: no solutions")

	// ErrInfiniteSolutions classifies an underdetermined system: fewer
	// pivots than variables.
	ErrInfiniteSolutions = errors.New("linsys: infinitely many solutions")

	// ErrParameterCount indicates Parametrization.At received a number
	// of parameters different from the number of direction vectors.
	ErrParameterCount = errors.New("linsys: wrong number of parameters")
)

// Package linsys: the Gaussian-elimination pipeline.
//
// TriangularForm → RREF → consistency check → parametrization. Every
// stage operates on a deep copy of its input system, so the pipeline
// is non-destructive end to end. Pivot selection takes the first
// coefficient outside epsilon — classification needs any nonzero
// pivot, and exact arithmetic has no magnitude-stability concern.

package linsys

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys/vector"
)

// SolutionKind classifies a solved system.
type SolutionKind int

const (
	// NoSolution: some row reduced to a contradiction 0 = c, c ≠ 0.
	NoSolution SolutionKind = iota

	// UniqueSolution: every variable has a pivot; the Parametrization
	// has an empty direction list and its basepoint is the solution.
	UniqueSolution

	// InfiniteSolutions: at least one free variable; the
	// Parametrization spans the affine solution subspace.
	InfiniteSolutions
)

// String renders the classification in words.
func (k SolutionKind) String() string {
	switch k {
	case NoSolution:
		return "no solutions"
	case UniqueSolution:
		return "unique solution"
	case InfiniteSolutions:
		return "infinitely many solutions"
	default:
		return fmt.Sprintf("SolutionKind(%d)", int(k))
	}
}

// Solution is the result of Solve. Parametrization is nil exactly when
// Kind is NoSolution.
type Solution struct {
	Kind            SolutionKind
	Parametrization *Parametrization
}

// String renders the classification, and the parametrization when one
// exists.
func (sol Solution) String() string {
	if sol.Parametrization == nil {
		return sol.Kind.String()
	}

	return sol.Kind.String() + ":\n" + sol.Parametrization.String()
}

// TriangularForm returns a row-echelon equivalent of s, computed on a
// deep copy: pivot columns are non-decreasing top to bottom and
// strictly increasing among pivot-bearing rows; all-zero rows sink to
// the bottom.
//
// For each row, the column cursor advances until a pivot is found:
// a near-zero entry triggers a search strictly below for a row with a
// nonzero entry in that column (swapped up if found, cursor advanced
// otherwise), then every entry below the pivot is cleared with
// coefficient -(below/pivot).
func (s *LinearSystem) TriangularForm() *LinearSystem {
	sys := s.Clone()

	col := 0
	for row := 0; row < sys.Len(); row++ {
		for col < sys.dimension {
			if sys.coefficient(row, col).Abs().Cmp(vector.Epsilon()) < 0 {
				if !sys.swapUpNonzero(row, col) {
					col++

					continue
				}
			}
			sys.clearBelow(row, col)
			col++

			break
		}
	}

	return sys
}

// RREF returns the reduced row-echelon equivalent of s, computed on a
// deep copy. After TriangularForm, rows are walked bottom to top: each
// pivot entry is scaled to exactly one, then the pivot's column is
// cleared in every row above with coefficient -(above). Pivotless rows
// are left untouched (they are all-zero by then).
func (s *LinearSystem) RREF() *LinearSystem {
	sys := s.TriangularForm()

	pivots := sys.FirstNonzeroIndices()
	for row := sys.Len() - 1; row >= 0; row-- {
		col := pivots[row]
		if col == NoPivot {
			continue
		}
		sys.scalePivotToOne(row, col)
		sys.clearAbove(row, col)
	}

	return sys
}

// CheckConsistent returns ErrNoSolution if any all-zero row carries a
// constant term outside epsilon of zero. Meaningful on an eliminated
// system; harmless (and still correct) on any other.
func (s *LinearSystem) CheckConsistent() error {
	for i, p := range s.planes {
		if !p.Normal().IsZero() {
			continue
		}
		if p.Constant().Abs().Cmp(vector.Epsilon()) >= 0 {
			return fmt.Errorf("row %d reduces to 0 = %s: %w", i, p.Constant(), ErrNoSolution)
		}
	}

	return nil
}

// CheckUniquelyDetermined returns ErrInfiniteSolutions when the system
// has fewer pivot rows than variables (at least one free variable).
func (s *LinearSystem) CheckUniquelyDetermined() error {
	pivots := 0
	for _, idx := range s.FirstNonzeroIndices() {
		if idx != NoPivot {
			pivots++
		}
	}
	if pivots < s.dimension {
		return fmt.Errorf("%d pivots for %d variables: %w", pivots, s.dimension, ErrInfiniteSolutions)
	}

	return nil
}

// Parametrize runs the full pipeline and extracts the solution set as
// a Parametrization.
//
// Returns ErrNoSolution for a contradictory system. An underdetermined
// system does NOT error here: its Parametrization simply carries one
// direction vector per free variable (and a uniquely determined system
// carries none). Callers wanting the infinite case as an error combine
// this with CheckUniquelyDetermined on the RREF.
func (s *LinearSystem) Parametrize() (*Parametrization, error) {
	sys := s.RREF()
	if err := sys.CheckConsistent(); err != nil {
		return nil, err
	}

	return NewParametrization(sys.extractBasepoint(), sys.extractDirectionVectors())
}

// Solve classifies the system. The two solution-space outcomes are
// results, not errors: Solve never fails.
func (s *LinearSystem) Solve() Solution {
	p, err := s.Parametrize()
	if err != nil {
		if errors.Is(err, ErrNoSolution) {
			return Solution{Kind: NoSolution}
		}
		// Parametrize has no other failure mode on a valid system.
		panic(fmt.Sprintf("linsys: Solve: %v", err))
	}

	if len(p.Directions()) == 0 {
		return Solution{Kind: UniqueSolution, Parametrization: p}
	}

	return Solution{Kind: InfiniteSolutions, Parametrization: p}
}

// swapUpNonzero searches strictly below row for a nonzero entry in col
// and swaps that row up. Reports whether a swap happened.
func (s *LinearSystem) swapUpNonzero(row, col int) bool {
	for k := row + 1; k < s.Len(); k++ {
		if s.coefficient(k, col).Abs().Cmp(vector.Epsilon()) >= 0 {
			s.planes[row], s.planes[k] = s.planes[k], s.planes[row]

			return true
		}
	}

	return false
}

// clearBelow zeroes column col in every row below row, using the row
// operation with coefficient -(below/pivot).
func (s *LinearSystem) clearBelow(row, col int) {
	pivot := s.coefficient(row, col)
	for k := row + 1; k < s.Len(); k++ {
		below := s.coefficient(k, col)
		if below.Abs().Cmp(vector.Epsilon()) < 0 {
			continue
		}
		alpha := below.DivRound(pivot, vector.DivisionScale).Neg()
		_ = s.AddMultipleOfRowToRow(alpha, row, k) // indices in range
	}
}

// clearAbove zeroes column col in every row above row. The pivot entry
// is one by the time this runs, so the coefficient is just -(above).
func (s *LinearSystem) clearAbove(row, col int) {
	for k := row - 1; k >= 0; k-- {
		above := s.coefficient(k, col)
		if above.Abs().Cmp(vector.Epsilon()) < 0 {
			continue
		}
		_ = s.AddMultipleOfRowToRow(above.Neg(), row, k) // indices in range
	}
}

// scalePivotToOne scales row so that its entry in col becomes exactly
// one (exact when the reciprocal terminates, 30-digit rounded
// otherwise — inside epsilon either way).
func (s *LinearSystem) scalePivotToOne(row, col int) {
	pivot := s.coefficient(row, col)
	_ = s.ScaleRow(decimal.New(1, 0).DivRound(pivot, vector.DivisionScale), row) // index in range
}

// extractDirectionVectors builds one direction vector per free
// variable of an RREF system, in ascending column order: coordinate
// free = 1, and for every pivot row, coordinate pivot = -(that row's
// coefficient at column free).
//
// Pivotless rows are skipped, not treated as terminators: extraction
// stays correct even if an all-zero row ever sorted above a pivot row.
func (s *LinearSystem) extractDirectionVectors() []vector.Vector {
	pivots := s.FirstNonzeroIndices()
	isPivotCol := make([]bool, s.dimension)
	for _, col := range pivots {
		if col != NoPivot {
			isPivotCol[col] = true
		}
	}

	one := decimal.New(1, 0)
	var directions []vector.Vector
	for free := 0; free < s.dimension; free++ {
		if isPivotCol[free] {
			continue
		}
		coords := make([]decimal.Decimal, s.dimension)
		coords[free] = one
		for row, col := range pivots {
			if col == NoPivot {
				continue
			}
			coords[col] = s.coefficient(row, free).Neg()
		}
		v, err := vector.New(coords...)
		if err != nil {
			panic(fmt.Sprintf("linsys: direction vector of dimension %d: %v", s.dimension, err))
		}
		directions = append(directions, v)
	}

	return directions
}

// extractBasepoint builds the particular solution of an RREF system:
// for every pivot row, coordinate pivot = that row's constant term;
// free coordinates stay zero. Pivotless rows are skipped, as above.
func (s *LinearSystem) extractBasepoint() vector.Vector {
	coords := make([]decimal.Decimal, s.dimension)
	for row, col := range s.FirstNonzeroIndices() {
		if col == NoPivot {
			continue
		}
		coords[col] = s.planes[row].Constant()
	}

	v, err := vector.New(coords...)
	if err != nil {
		panic(fmt.Sprintf("linsys: basepoint of dimension %d: %v", s.dimension, err))
	}

	return v
}

package linsys

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys/hyperplane"
	"github.com/katalvlaran/linsys/vector"
)

// NoPivot marks a row whose normal vector has no nonzero coefficient
// (an all-zero row) in FirstNonzeroIndices.
const NoPivot = -1

// LinearSystem is an ordered, mutable collection of Hyperplane rows
// sharing one ambient dimension.
//
// The three elementary row operations (SwapRows, ScaleRow with a
// nonzero coefficient, AddMultipleOfRowToRow) each preserve the
// solution set. The solving pipeline (TriangularForm, RREF, Solve)
// works on an internal deep copy and never mutates the receiver.
type LinearSystem struct {
	planes    []*hyperplane.Hyperplane
	dimension int
}

// New builds a LinearSystem from the given rows.
//
// Returns ErrEmptySystem with no rows, ErrNilRow on a nil row, and
// ErrDimensionMismatch unless every row shares the first row's
// dimension.
func New(planes ...*hyperplane.Hyperplane) (*LinearSystem, error) {
	if len(planes) == 0 {
		return nil, ErrEmptySystem
	}
	for i, p := range planes {
		if p == nil {
			return nil, fmt.Errorf("New: row %d: %w", i, ErrNilRow)
		}
	}

	dim := planes[0].Dimension()
	for i, p := range planes {
		if p.Dimension() != dim {
			return nil, fmt.Errorf("New: row %d has dimension %d, want %d: %w",
				i, p.Dimension(), dim, ErrDimensionMismatch)
		}
	}

	own := make([]*hyperplane.Hyperplane, len(planes))
	copy(own, planes)

	return &LinearSystem{planes: own, dimension: dim}, nil
}

// Len reports the number of rows (equations).
func (s *LinearSystem) Len() int { return len(s.planes) }

// Dimension reports the ambient dimension (number of variables).
func (s *LinearSystem) Dimension() int { return s.dimension }

// Row returns row i, bounds-checked.
func (s *LinearSystem) Row(i int) (*hyperplane.Hyperplane, error) {
	if err := s.checkRow(i, "Row"); err != nil {
		return nil, err
	}

	return s.planes[i], nil
}

// SetRow replaces row i with p. The replacement must live in the
// system's dimension; SetRow is the only mutation that could break the
// dimension invariant, so it re-validates.
func (s *LinearSystem) SetRow(i int, p *hyperplane.Hyperplane) error {
	if err := s.checkRow(i, "SetRow"); err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("SetRow(%d): %w", i, ErrNilRow)
	}
	if p.Dimension() != s.dimension {
		return fmt.Errorf("SetRow(%d): row has dimension %d, want %d: %w",
			i, p.Dimension(), s.dimension, ErrDimensionMismatch)
	}
	s.planes[i] = p

	return nil
}

// Clone returns a deep value copy: the row slice is fresh, and rows
// themselves are immutable, so the clone and the original share no
// mutable state.
func (s *LinearSystem) Clone() *LinearSystem {
	planes := make([]*hyperplane.Hyperplane, len(s.planes))
	copy(planes, s.planes)

	return &LinearSystem{planes: planes, dimension: s.dimension}
}

// SwapRows exchanges rows i and j.
func (s *LinearSystem) SwapRows(i, j int) error {
	if err := s.checkRow(i, "SwapRows"); err != nil {
		return err
	}
	if err := s.checkRow(j, "SwapRows"); err != nil {
		return err
	}
	s.planes[i], s.planes[j] = s.planes[j], s.planes[i]

	return nil
}

// ScaleRow replaces row i by the coefficient-scaled row:
// normal ← c·normal, constant ← c·constant.
//
// Scaling by zero is not rejected here — the operation is mechanical —
// but it collapses the row to 0 = 0 and does NOT preserve the solution
// set; solution-preserving callers must pass a nonzero coefficient.
// The RREF pipeline only ever scales by a pivot reciprocal.
func (s *LinearSystem) ScaleRow(c decimal.Decimal, i int) error {
	if err := s.checkRow(i, "ScaleRow"); err != nil {
		return err
	}
	row := s.planes[i]
	s.planes[i] = s.rebuildRow(row.Normal().Scale(c), row.Constant().Mul(c))

	return nil
}

// AddMultipleOfRowToRow replaces row dst by c·row[src] + row[dst],
// applied to normal vectors and constant terms independently.
func (s *LinearSystem) AddMultipleOfRowToRow(c decimal.Decimal, src, dst int) error {
	if err := s.checkRow(src, "AddMultipleOfRowToRow"); err != nil {
		return err
	}
	if err := s.checkRow(dst, "AddMultipleOfRowToRow"); err != nil {
		return err
	}

	from, to := s.planes[src], s.planes[dst]
	normal, err := from.Normal().Scale(c).Add(to.Normal())
	if err != nil {
		// Rows of one system always share a dimension; reaching this
		// means the construction invariant was broken internally.
		panic(fmt.Sprintf("linsys: row dimension invariant violated: %v", err))
	}
	s.planes[dst] = s.rebuildRow(normal, from.Constant().Mul(c).Add(to.Constant()))

	return nil
}

// FirstNonzeroIndices returns, per row, the column of the row's first
// coefficient outside epsilon of zero, or NoPivot for an all-zero row.
// On a system in echelon form these are exactly the pivot columns.
func (s *LinearSystem) FirstNonzeroIndices() []int {
	indices := make([]int, len(s.planes))
	for i, p := range s.planes {
		idx, ok := hyperplane.FirstNonzeroIndex(p.Normal())
		if !ok {
			idx = NoPivot
		}
		indices[i] = idx
	}

	return indices
}

// String renders the system one equation per line.
func (s *LinearSystem) String() string {
	var b strings.Builder
	b.WriteString("Linear system:\n")
	for i, p := range s.planes {
		fmt.Fprintf(&b, "Equation %d: %s\n", i+1, p)
	}

	return b.String()
}

// rebuildRow constructs a fresh immutable row from raw parts. The
// inputs come from existing rows, so construction cannot fail.
func (s *LinearSystem) rebuildRow(normal vector.Vector, constant decimal.Decimal) *hyperplane.Hyperplane {
	p, err := hyperplane.New(hyperplane.WithNormal(normal), hyperplane.WithConstant(constant))
	if err != nil {
		panic(fmt.Sprintf("linsys: rebuilding row from valid parts failed: %v", err))
	}

	return p
}

// coefficient reads normal coefficient (row, col); both indices are
// maintained by the elimination loops and always in range.
func (s *LinearSystem) coefficient(row, col int) decimal.Decimal {
	c, err := s.planes[row].At(col)
	if err != nil {
		panic(fmt.Sprintf("linsys: coefficient(%d, %d): %v", row, col, err))
	}

	return c
}

// checkRow is the shared bounds guard for public row operations.
func (s *LinearSystem) checkRow(i int, op string) error {
	if i < 0 || i >= len(s.planes) {
		return fmt.Errorf("%s: index %d of %d rows: %w", op, i, len(s.planes), ErrRowOutOfRange)
	}

	return nil
}

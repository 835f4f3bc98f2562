package linsys

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys/vector"
)

// Parametrization describes an affine solution set:
//
//	{ basepoint + t_1·d_1 + ... + t_k·d_k : t_i ∈ decimals }
//
// A uniquely determined system yields k = 0 (the set is one point).
// Immutable after construction.
type Parametrization struct {
	basepoint  vector.Vector
	directions []vector.Vector
}

// NewParametrization validates that every direction vector lives in
// the basepoint's dimension and returns the value.
// Returns ErrDimensionMismatch otherwise.
func NewParametrization(basepoint vector.Vector, directions []vector.Vector) (*Parametrization, error) {
	for i, d := range directions {
		if d.Dimension() != basepoint.Dimension() {
			return nil, fmt.Errorf("NewParametrization: direction %d has dimension %d, want %d: %w",
				i, d.Dimension(), basepoint.Dimension(), ErrDimensionMismatch)
		}
	}

	own := make([]vector.Vector, len(directions))
	copy(own, directions)

	return &Parametrization{basepoint: basepoint, directions: own}, nil
}

// Dimension reports the ambient dimension of the solution set.
func (p *Parametrization) Dimension() int { return p.basepoint.Dimension() }

// Basepoint returns the particular solution.
func (p *Parametrization) Basepoint() vector.Vector { return p.basepoint }

// Directions returns a fresh copy of the direction-vector list, one
// entry per free variable, ordered by ascending free-variable column.
func (p *Parametrization) Directions() []vector.Vector {
	out := make([]vector.Vector, len(p.directions))
	copy(out, p.directions)

	return out
}

// At evaluates the parametrization at the given parameter values:
// basepoint + Σ params[i]·directions[i].
// Returns ErrParameterCount unless len(params) == len(directions).
func (p *Parametrization) At(params ...decimal.Decimal) (vector.Vector, error) {
	if len(params) != len(p.directions) {
		return vector.Vector{}, fmt.Errorf("At: %d parameters for %d directions: %w",
			len(params), len(p.directions), ErrParameterCount)
	}

	point := p.basepoint
	for i, t := range params {
		next, err := point.Add(p.directions[i].Scale(t))
		if err != nil {
			// Directions were dimension-checked at construction.
			panic(fmt.Sprintf("linsys: Parametrization.At: %v", err))
		}
		point = next
	}

	return point, nil
}

// String renders one line per coordinate:
//
//	x_1 = b_1 + c t_1 - d t_2
//
// Near-zero direction coefficients are omitted; unit coefficients drop
// the digit.
func (p *Parametrization) String() string {
	one := decimal.New(1, 0)

	var b strings.Builder
	for coord := 0; coord < p.Dimension(); coord++ {
		base, err := p.basepoint.At(coord)
		if err != nil {
			panic(fmt.Sprintf("linsys: Parametrization.String: %v", err))
		}
		fmt.Fprintf(&b, "x_%d = %s", coord+1, base)

		for t, dir := range p.directions {
			coef, err := dir.At(coord)
			if err != nil {
				panic(fmt.Sprintf("linsys: Parametrization.String: %v", err))
			}
			if coef.Abs().Cmp(vector.Epsilon()) < 0 {
				continue
			}
			if coef.Sign() < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
			if abs := coef.Abs(); !abs.Equal(one) {
				b.WriteString(abs.String())
			}
			fmt.Fprintf(&b, "t_%d", t+1)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// epsilon is the module-wide tolerance for "near zero" comparisons.
// Every zero test, orthogonality test, and collinearity test in linsys
// compares against this single constant, never against exact zero, so
// that rounding noise from prior divisions is absorbed uniformly.
var epsilon = decimal.New(1, -10) // 1e-10

// Epsilon returns the shared near-zero tolerance (1e-10). The backing
// value is unexported and decimals are immutable, so no importer can
// reassign the tolerance the three linsys packages agree on.
func Epsilon() decimal.Decimal { return epsilon }

// DivisionScale is the number of fractional digits kept by exact
// division (DivRound). It mirrors the precision the solver's row
// operations were designed for and comfortably dominates Epsilon.
const DivisionScale = 30

// Vector is an immutable ordered tuple of exact decimal coordinates.
// The zero value is an empty vector of dimension 0; use the
// constructors to build useful instances. All methods are pure.
type Vector struct {
	coords []decimal.Decimal
}

// New builds a Vector from the given coordinates.
// Returns ErrEmptyVector when called with none.
func New(coords ...decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyVector
	}
	own := make([]decimal.Decimal, len(coords))
	copy(own, coords)

	return Vector{coords: own}, nil
}

// MustNew is New for static inputs; it panics on ErrEmptyVector.
// Intended for fixtures and examples where the input is a literal.
func MustNew(coords ...decimal.Decimal) Vector {
	v, err := New(coords...)
	if err != nil {
		panic(err)
	}

	return v
}

// FromStrings parses each token as an exact decimal coordinate.
// Returns ErrBadCoordinate (wrapped with the offending token) on the
// first token that does not parse.
func FromStrings(tokens ...string) (Vector, error) {
	if len(tokens) == 0 {
		return Vector{}, ErrEmptyVector
	}
	coords := make([]decimal.Decimal, len(tokens))
	for i, tok := range tokens {
		d, err := decimal.NewFromString(tok)
		if err != nil {
			return Vector{}, fmt.Errorf("coordinate %d (%q): %w", i, tok, ErrBadCoordinate)
		}
		coords[i] = d
	}

	return Vector{coords: coords}, nil
}

// FromFloat64s converts float64 inputs into decimal coordinates.
// Conversion is shortest-representation (decimal.NewFromFloat), so
// 0.1 becomes the decimal 0.1, not its binary expansion.
func FromFloat64s(values ...float64) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, ErrEmptyVector
	}
	coords := make([]decimal.Decimal, len(values))
	for i, f := range values {
		coords[i] = decimal.NewFromFloat(f)
	}

	return Vector{coords: coords}, nil
}

// Zero returns the zero vector of dimension n.
// Returns ErrEmptyVector when n <= 0.
func Zero(n int) (Vector, error) {
	if n <= 0 {
		return Vector{}, ErrEmptyVector
	}

	return Vector{coords: make([]decimal.Decimal, n)}, nil
}

// Dimension reports the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// At returns coordinate i, bounds-checked.
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Decimal{}, fmt.Errorf("At(%d) of dimension %d: %w", i, len(v.coords), ErrIndexOutOfRange)
	}

	return v.coords[i], nil
}

// Coords returns a fresh copy of the coordinate slice. Each call
// yields an independent slice, so iteration is restartable and the
// Vector stays immutable.
func (v Vector) Coords() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coords))
	copy(out, v.coords)

	return out
}

// Equal reports exact coordinate-wise equality (2.50 equals 2.5).
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// ApproxEqual reports coordinate-wise equality within Epsilon.
// Use it to compare values produced by division-bearing pipelines.
func (v Vector) ApproxEqual(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Sub(w.coords[i]).Abs().Cmp(epsilon) >= 0 {
			return false
		}
	}

	return true
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := sameDimension(v, w, "Add"); err != nil {
		return Vector{}, err
	}
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i] = v.coords[i].Add(w.coords[i])
	}

	return Vector{coords: coords}, nil
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := sameDimension(v, w, "Sub"); err != nil {
		return Vector{}, err
	}
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i] = v.coords[i].Sub(w.coords[i])
	}

	return Vector{coords: coords}, nil
}

// Scale returns c * v.
func (v Vector) Scale(c decimal.Decimal) Vector {
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i] = v.coords[i].Mul(c)
	}

	return Vector{coords: coords}
}

// Dot returns the inner product v · w. Multiplication and addition of
// decimals are exact, so the result carries no rounding noise.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := sameDimension(v, w, "Dot"); err != nil {
		return decimal.Decimal{}, err
	}
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}

	return sum, nil
}

// Magnitude returns the Euclidean length |v|.
//
// The squared length is computed exactly; its root is found by Newton
// iteration in decimal space, so coordinates far outside float64 range
// (1e200 and beyond, or sub-1e-200) are handled like any others. No
// epsilon-sensitive predicate in this module consumes Magnitude
// (parallelism uses exact minors).
func (v Vector) Magnitude() decimal.Decimal {
	sq, _ := v.Dot(v) // same vector twice, dimension always matches

	return decimalSqrt(sq)
}

// sqrtMaxIterations caps Newton's loop; quadratic convergence from the
// float64 seed settles in well under ten rounds, the cap only guards
// against a last-digit oscillation under DivRound.
const sqrtMaxIterations = 64

// decimalSqrt computes √d for d >= 0.
//
// d is normalized to m·10^(2k) with m in [0.1, 10); Newton iteration
// finds √m, and the exponent is restored afterwards. Working on m
// keeps DivRound's fixed fractional precision relative to d's scale,
// and m always fits a float64, so the seed is simply the float root.
func decimalSqrt(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	// order is d's decimal order of magnitude: d ∈ [10^(order-1), 10^order).
	order := int32(d.NumDigits()) + d.Exponent()
	k := order / 2
	if order < 0 && order%2 != 0 {
		k-- // floor, not truncation, for odd negative orders
	}
	m := d.Shift(-2 * k)

	x := decimal.NewFromFloat(math.Sqrt(m.InexactFloat64()))
	half := decimal.New(5, -1)
	for i := 0; i < sqrtMaxIterations; i++ {
		next := x.Add(m.DivRound(x, DivisionScale)).Mul(half)
		if next.Equal(x) {
			break
		}
		x = next
	}

	return x.Shift(k)
}

// Unit returns v scaled to length one.
// Returns ErrZeroVector when v has no direction to normalize.
//
// Each coordinate is divided by the length directly rather than
// multiplied by a rounded reciprocal; the quotients are of order one,
// so they keep full precision at any coordinate scale.
func (v Vector) Unit() (Vector, error) {
	if v.IsZero() {
		return Vector{}, fmt.Errorf("Unit: %w", ErrZeroVector)
	}
	mag := v.Magnitude()
	coords := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		coords[i] = v.coords[i].DivRound(mag, DivisionScale)
	}

	return Vector{coords: coords}, nil
}

// IsZero reports whether every coordinate is within Epsilon of zero.
func (v Vector) IsZero() bool {
	for i := range v.coords {
		if v.coords[i].Abs().Cmp(epsilon) >= 0 {
			return false
		}
	}

	return true
}

// IsParallelTo reports whether v and w are collinear (same or opposite
// direction). The zero vector is parallel to every vector.
//
// Collinearity is decided by 2x2 minors: v ∥ w iff v_i*w_j - v_j*w_i
// vanishes for every coordinate pair. Minors use only exact
// multiplication and subtraction, so the test needs no division, no
// magnitude, and no angle.
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	if err := sameDimension(v, w, "IsParallelTo"); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	for i := 0; i < len(v.coords); i++ {
		for j := i + 1; j < len(v.coords); j++ {
			minor := v.coords[i].Mul(w.coords[j]).Sub(v.coords[j].Mul(w.coords[i]))
			if minor.Abs().Cmp(epsilon) >= 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsOrthogonalTo reports whether v · w is within Epsilon of zero.
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}

	return dot.Abs().Cmp(epsilon) < 0, nil
}

// String renders the vector as "(c_1, c_2, ..., c_n)".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range v.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.coords[i].String())
	}
	b.WriteByte(')')

	return b.String()
}

// sameDimension is the shared binary-operation guard.
func sameDimension(v, w Vector, op string) error {
	if len(v.coords) != len(w.coords) {
		return fmt.Errorf("%s: %d vs %d: %w", op, len(v.coords), len(w.coords), ErrDimensionMismatch)
	}

	return nil
}

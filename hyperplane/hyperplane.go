package hyperplane

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys/vector"
)

// Hyperplane is the point set { x : normal · x = constant } in an
// n-dimensional ambient space. Immutable after New.
type Hyperplane struct {
	normal   vector.Vector
	constant decimal.Decimal

	// basepoint is one point on the hyperplane, derived in New.
	// hasBasepoint is false iff the normal vector is zero.
	basepoint    vector.Vector
	hasBasepoint bool
}

// New builds a Hyperplane from functional options.
//
// Rules:
//   - Neither WithDimension nor WithNormal → ErrNoOrientation.
//   - WithDimension(n) with n <= 0 → ErrBadDimension.
//   - Both given but normal.Dimension() != n → ErrBadDimension.
//   - Only WithDimension → the normal defaults to the zero vector.
//   - The constant term defaults to zero.
//
// The basepoint is computed here, once: the point whose only nonzero
// coordinate sits at the normal's first nonzero index, with value
// constant / coefficient. A zero normal has no basepoint.
func New(opts ...Option) (*Hyperplane, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasDim && !cfg.hasNormal {
		return nil, ErrNoOrientation
	}
	if cfg.hasDim && cfg.dimension <= 0 {
		return nil, fmt.Errorf("New: dimension %d: %w", cfg.dimension, ErrBadDimension)
	}
	if cfg.hasNormal && cfg.normal.Dimension() == 0 {
		return nil, fmt.Errorf("New: empty normal vector: %w", ErrBadDimension)
	}
	if cfg.hasDim && cfg.hasNormal && cfg.normal.Dimension() != cfg.dimension {
		return nil, fmt.Errorf("New: normal has dimension %d, want %d: %w",
			cfg.normal.Dimension(), cfg.dimension, ErrBadDimension)
	}

	normal := cfg.normal
	if !cfg.hasNormal {
		z, err := vector.Zero(cfg.dimension)
		if err != nil {
			return nil, fmt.Errorf("New: %w", ErrBadDimension)
		}
		normal = z
	}

	h := &Hyperplane{normal: normal, constant: cfg.constant}
	h.setBasepoint()

	return h, nil
}

// setBasepoint derives the cached basepoint from normal and constant.
func (h *Hyperplane) setBasepoint() {
	idx, ok := FirstNonzeroIndex(h.normal)
	if !ok {
		return // zero normal: no point satisfies or all do; no basepoint
	}

	coords := make([]decimal.Decimal, h.normal.Dimension())
	coef, _ := h.normal.At(idx) // idx comes from the scan, always in range
	coords[idx] = h.constant.DivRound(coef, vector.DivisionScale)

	bp, _ := vector.New(coords...) // dimension >= 1 here
	h.basepoint = bp
	h.hasBasepoint = true
}

// FirstNonzeroIndex scans v's coordinates in order and returns the
// index of the first one whose absolute value reaches vector.Epsilon.
// ok is false when every coordinate is within epsilon of zero.
//
// This is the explicit presence-pair replacing a sentinel "not found"
// condition: callers branch on ok, and nothing escapes as an error.
func FirstNonzeroIndex(v vector.Vector) (int, bool) {
	for i, c := range v.Coords() {
		if c.Abs().Cmp(vector.Epsilon()) >= 0 {
			return i, true
		}
	}

	return -1, false
}

// Dimension reports the ambient dimension.
func (h *Hyperplane) Dimension() int { return h.normal.Dimension() }

// Normal returns the normal vector.
func (h *Hyperplane) Normal() vector.Vector { return h.normal }

// Constant returns the constant term.
func (h *Hyperplane) Constant() decimal.Decimal { return h.constant }

// At returns coefficient i of the normal vector, bounds-checked.
func (h *Hyperplane) At(i int) (decimal.Decimal, error) { return h.normal.At(i) }

// Coefficients returns a fresh copy of the normal's coordinates.
func (h *Hyperplane) Coefficients() []decimal.Decimal { return h.normal.Coords() }

// Basepoint returns the cached point on the hyperplane.
// ok is false when the normal vector is zero.
func (h *Hyperplane) Basepoint() (vector.Vector, bool) {
	return h.basepoint, h.hasBasepoint
}

// IsParallelTo reports whether the two hyperplanes have collinear
// normals (same or opposite orientation).
func (h *Hyperplane) IsParallelTo(other *Hyperplane) (bool, error) {
	ok, err := h.normal.IsParallelTo(other.normal)
	if err != nil {
		return false, fmt.Errorf("IsParallelTo: %w", ErrDimensionMismatch)
	}

	return ok, nil
}

// IsOrthogonalTo reports whether the two normals are orthogonal.
func (h *Hyperplane) IsOrthogonalTo(other *Hyperplane) (bool, error) {
	ok, err := h.normal.IsOrthogonalTo(other.normal)
	if err != nil {
		return false, fmt.Errorf("IsOrthogonalTo: %w", ErrDimensionMismatch)
	}

	return ok, nil
}

// Equal reports whether h and other are the same geometric object
// (coincident), which is strictly stronger than parallel.
//
// Protocol:
//  1. If h's normal is zero: coincident iff other's normal is also
//     zero and the constant terms differ by less than epsilon.
//  2. If only other's normal is zero: not coincident.
//  3. If the normals are not parallel: not coincident.
//  4. Otherwise the hyperplanes share a direction; they coincide iff
//     the vector between their basepoints lies inside that shared
//     direction, i.e. is orthogonal to the (either) normal.
func (h *Hyperplane) Equal(other *Hyperplane) (bool, error) {
	if h.Dimension() != other.Dimension() {
		return false, fmt.Errorf("Equal: %d vs %d: %w",
			h.Dimension(), other.Dimension(), ErrDimensionMismatch)
	}

	if h.normal.IsZero() {
		if !other.normal.IsZero() {
			return false, nil
		}

		return h.constant.Sub(other.constant).Abs().Cmp(vector.Epsilon()) < 0, nil
	}
	if other.normal.IsZero() {
		return false, nil
	}

	parallel, err := h.IsParallelTo(other)
	if err != nil {
		return false, err
	}
	if !parallel {
		return false, nil
	}

	// Both normals are nonzero here, so both basepoints exist.
	between, err := h.basepoint.Sub(other.basepoint)
	if err != nil {
		return false, err
	}
	// Parallel normals: checking against one of them suffices.
	coincident, err := between.IsOrthogonalTo(h.normal)
	if err != nil {
		return false, err
	}

	return coincident, nil
}

// String renders the equation "a_1x_1 + a_2x_2 + ... = c".
// Near-zero coefficients are omitted, unit coefficients drop the "1",
// and a zero normal renders as "0 = c".
func (h *Hyperplane) String() string {
	one := decimal.New(1, 0)

	var b strings.Builder
	wrote := false
	for i, coef := range h.normal.Coords() {
		if coef.Abs().Cmp(vector.Epsilon()) < 0 {
			continue
		}
		switch {
		case !wrote && coef.Sign() < 0:
			b.WriteByte('-')
		case wrote && coef.Sign() < 0:
			b.WriteString(" - ")
		case wrote:
			b.WriteString(" + ")
		}
		if abs := coef.Abs(); !abs.Equal(one) {
			b.WriteString(abs.String())
		}
		fmt.Fprintf(&b, "x_%d", i+1)
		wrote = true
	}
	if !wrote {
		b.WriteByte('0')
	}
	b.WriteString(" = ")
	b.WriteString(h.constant.String())

	return b.String()
}

// Package hyperplane: functional construction options.
//
// A Hyperplane needs an ambient space. Callers provide it either
// explicitly (WithDimension) or implicitly through the normal vector
// (WithNormal); New validates the combination and fails fast on
// nonsense, so an option never panics on its own.

package hyperplane

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys/vector"
)

// Option configures New. Options are applied in call order; the last
// write wins for repeated options of the same kind.
type Option func(*config)

// config accumulates construction state before validation.
type config struct {
	dimension int
	hasDim    bool
	normal    vector.Vector
	hasNormal bool
	constant  decimal.Decimal
}

// WithDimension fixes the ambient dimension. When no normal vector is
// given, the normal defaults to the zero vector of this dimension
// (a degenerate "0 = constant" row).
func WithDimension(n int) Option {
	return func(c *config) {
		c.dimension = n
		c.hasDim = true
	}
}

// WithNormal sets the normal vector; the ambient dimension is derived
// from it unless WithDimension was also given, in which case the two
// must agree.
func WithNormal(n vector.Vector) Option {
	return func(c *config) {
		c.normal = n
		c.hasNormal = true
	}
}

// WithConstant sets the constant term (defaults to zero).
func WithConstant(k decimal.Decimal) Option {
	return func(c *config) {
		c.constant = k
	}
}

package unit

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/dimq/dimension"
)

// Calculator converts values between units of one dimension. Instances are
// memoized per dimension: Calculator(dim) returns the same pointer for the
// life of the process, so callers may cache and compare by identity.
//
// Internally each (from, to) pair is composed once into a single affine
// transform and cached; repeated conversions between the same pair cost one
// map load plus one multiply-add.
type Calculator struct {
	dim   dimension.Dimension
	reg   *Registry
	pairs sync.Map // pairKey → affine
}

// pairKey identifies one composed conversion.
type pairKey struct {
	from, to string
}

// affine is a composed conversion: out = v*scale + offset.
type affine struct {
	scale, offset float64
}

// Calculator returns the memoized calculator for a dimension. Concurrent
// first access is safe: the first publish wins and every caller observes the
// same instance. Fails with ErrUnknownDimension if no units are registered.
func (r *Registry) Calculator(dim dimension.Dimension) (*Calculator, error) {
	if c, ok := r.calcs.Load(dim); ok {
		return c.(*Calculator), nil
	}

	r.mu.RLock()
	_, known := r.tables[dim]
	r.mu.RUnlock()
	if !known {
		return nil, fmt.Errorf("calculator for %s: %w", dim, ErrUnknownDimension)
	}

	// Building the struct twice under a race is fine: LoadOrStore publishes
	// exactly one and both candidates are identical.
	c, _ := r.calcs.LoadOrStore(dim, &Calculator{dim: dim, reg: r})

	return c.(*Calculator), nil
}

// GetCalculator returns the memoized calculator for a dimension from the
// default registry.
func GetCalculator(dim dimension.Dimension) (*Calculator, error) {
	return defaultRegistry.Calculator(dim)
}

// Dimension returns the dimension this calculator serves.
func (c *Calculator) Dimension() dimension.Dimension {
	return c.dim
}

// ToBase converts a value expressed in the named unit into the base unit.
func (c *Calculator) ToBase(v float64, name string) (float64, error) {
	u, err := c.reg.Lookup(c.dim, name)
	if err != nil {
		return 0, err
	}

	return u.ToBase(v), nil
}

// FromBase converts a base-unit value into the named unit.
func (c *Calculator) FromBase(v float64, name string) (float64, error) {
	u, err := c.reg.Lookup(c.dim, name)
	if err != nil {
		return 0, err
	}

	return u.FromBase(v), nil
}

// Convert converts a value from one named unit to another within the
// calculator's dimension. The composed (from, to) transform is resolved once
// and cached for the life of the process.
func (c *Calculator) Convert(v float64, from, to string) (float64, error) {
	key := pairKey{from: from, to: to}
	if a, ok := c.pairs.Load(key); ok {
		t := a.(affine)

		return v*t.scale + t.offset, nil
	}

	fu, err := c.reg.Lookup(c.dim, from)
	if err != nil {
		return 0, err
	}
	tu, err := c.reg.Lookup(c.dim, to)
	if err != nil {
		return 0, err
	}

	// Compose toBase(from) with fromBase(to):
	//   ((v*s1 + o1) - o2) / s2  ==  v*(s1/s2) + (o1-o2)/s2
	t := affine{scale: fu.Scale / tu.Scale, offset: (fu.Offset - tu.Offset) / tu.Scale}
	a, _ := c.pairs.LoadOrStore(key, t)
	t = a.(affine)

	return v*t.scale + t.offset, nil
}

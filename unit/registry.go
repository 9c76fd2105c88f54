package unit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/dimq/dimension"
)

// table holds one dimension's unit definitions and its designated base.
type table struct {
	base  string
	units map[string]Unit
}

// Registry is a per-dimension table of units with a memoized calculator
// cache. Name tables are guarded by an RWMutex (writes happen at startup,
// reads are hot); calculators are published once per dimension via sync.Map
// so concurrent first access observes a single shared instance.
type Registry struct {
	mu     sync.RWMutex
	tables map[dimension.Dimension]*table
	calcs  sync.Map // dimension.Dimension → *Calculator
}

// NewRegistry returns an empty registry. Most callers want the package-level
// default registry, which carries the builtin catalog.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[dimension.Dimension]*table)}
}

// RegisterBase registers u as the base unit of its dimension. The base must
// be an identity conversion (scale 1, offset 0). Re-registering the identical
// base is a no-op; a conflicting base fails with ErrUnitRedefined.
func (r *Registry) RegisterBase(u Unit) error {
	if err := u.validate(); err != nil {
		return fmt.Errorf("register base %q: %w", u.Name, err)
	}
	if !u.IsBaseDefinition() {
		return fmt.Errorf("register base %q: scale must be 1 and offset 0: %w", u.Name, ErrBadUnit)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tab := r.tables[u.Dim]
	if tab == nil {
		tab = &table{units: make(map[string]Unit)}
		r.tables[u.Dim] = tab
	}
	if tab.base != "" && tab.base != u.Name {
		return fmt.Errorf("register base %q: base is %q: %w", u.Name, tab.base, ErrUnitRedefined)
	}
	if err := tab.put(u); err != nil {
		return err
	}
	tab.base = u.Name

	return nil
}

// Register adds a unit to its dimension's table. Registering an identical
// definition twice is a no-op (static-initializer re-entry is safe);
// registering an existing name with a different definition fails with
// ErrUnitRedefined.
func (r *Registry) Register(u Unit) error {
	if err := u.validate(); err != nil {
		return fmt.Errorf("register %q: %w", u.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tab := r.tables[u.Dim]
	if tab == nil {
		tab = &table{units: make(map[string]Unit)}
		r.tables[u.Dim] = tab
	}

	return tab.put(u)
}

// put inserts a unit enforcing the idempotent-or-conflict contract.
func (t *table) put(u Unit) error {
	if prev, ok := t.units[u.Name]; ok {
		if prev == u {
			return nil
		}

		return fmt.Errorf("register %q: %w", u.Name, ErrUnitRedefined)
	}
	t.units[u.Name] = u

	return nil
}

// Lookup resolves a case-sensitive unit name within a dimension.
func (r *Registry) Lookup(dim dimension.Dimension, name string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tab := r.tables[dim]
	if tab == nil {
		return Unit{}, fmt.Errorf("lookup %q in %s: %w", name, dim, ErrUnknownDimension)
	}
	u, ok := tab.units[name]
	if !ok {
		return Unit{}, fmt.Errorf("lookup %q in %s: %w", name, dim, ErrUnknownUnit)
	}

	return u, nil
}

// MustLookup is Lookup that panics on error, for static unit references.
func (r *Registry) MustLookup(dim dimension.Dimension, name string) Unit {
	u, err := r.Lookup(dim, name)
	if err != nil {
		panic(err)
	}

	return u
}

// Units returns the sorted, complete list of unit names registered for a
// dimension. Sorting keeps the listing stable across processes.
func (r *Registry) Units(dim dimension.Dimension) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tab := r.tables[dim]
	if tab == nil {
		return nil, fmt.Errorf("units of %s: %w", dim, ErrUnknownDimension)
	}
	names := make([]string, 0, len(tab.units))
	for name := range tab.units {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// BaseUnit returns the designated base unit name of a dimension.
func (r *Registry) BaseUnit(dim dimension.Dimension) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tab := r.tables[dim]
	if tab == nil {
		return "", fmt.Errorf("base unit of %s: %w", dim, ErrUnknownDimension)
	}
	if tab.base == "" {
		return "", fmt.Errorf("base unit of %s: %w", dim, ErrNoBaseUnit)
	}

	return tab.base, nil
}

// Dimensions returns every dimension that has at least one registered unit,
// in an unspecified but duplicate-free order.
func (r *Registry) Dimensions() []dimension.Dimension {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dims := make([]dimension.Dimension, 0, len(r.tables))
	for dim := range r.tables {
		dims = append(dims, dim)
	}

	return dims
}

// defaultRegistry carries the builtin catalog; see catalog.go.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry holding the builtin catalog.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a unit to the default registry.
func Register(u Unit) error { return defaultRegistry.Register(u) }

// RegisterBase adds a base unit to the default registry.
func RegisterBase(u Unit) error { return defaultRegistry.RegisterBase(u) }

// Lookup resolves a unit name in the default registry.
func Lookup(dim dimension.Dimension, name string) (Unit, error) {
	return defaultRegistry.Lookup(dim, name)
}

// MustLookup resolves a unit name in the default registry, panicking on error.
func MustLookup(dim dimension.Dimension, name string) Unit {
	return defaultRegistry.MustLookup(dim, name)
}

// Units lists unit names for a dimension in the default registry.
func Units(dim dimension.Dimension) ([]string, error) { return defaultRegistry.Units(dim) }

// BaseUnit returns the base unit name for a dimension in the default registry.
func BaseUnit(dim dimension.Dimension) (string, error) { return defaultRegistry.BaseUnit(dim) }

// Dimensions lists dimensions known to the default registry.
func Dimensions() []dimension.Dimension { return defaultRegistry.Dimensions() }

// Package unit models named units of measure and the per-dimension
// conversion registry that resolves them.
//
// 🚀 What is a unit here?
//
//	A Unit is an immutable conversion rule from a named unit to its
//	dimension's canonical base unit:
//	  toBase(v)   = v*Scale + Offset
//	  fromBase(v) = (v - Offset) / Scale
//	Offset is nonzero only for affine, temperature-like units
//	("celsius", "fahrenheit"); everything else is a pure scale factor.
//
// ✨ Key features:
//   - Per-dimension registry: unit names are case-sensitive, lowercase,
//     and scoped to their dimension ("meters" belongs to length only)
//   - Idempotent registration: re-registering an identical definition is a
//     no-op, a conflicting one fails with ErrUnitRedefined
//   - Memoized calculators: Calculator(dim) returns the same *Calculator
//     pointer for the life of the process, with a per-(from,to) composed
//     conversion cache inside — safe under concurrent first access
//   - A builtin catalog of SI and common imperial units, registered into
//     the default registry at init
//
// ⚙️ Usage:
//
//	km, err := unit.Lookup(dimension.Length, "kilometers")
//	calc, err := unit.Calculator(dimension.Length)
//	v, err := calc.Convert(2.5, "kilometers", "meters") // 2500
//
// Errors:
//
//	ErrUnknownUnit      - unit name not registered for the dimension.
//	ErrUnknownDimension - no units registered for the dimension.
//	ErrUnitRedefined    - conflicting re-registration of an existing name.
//	ErrNoBaseUnit       - dimension has units but no designated base.
//	ErrBadUnit          - empty name, non-finite or zero scale, base with
//	                      scale≠1 or offset≠0.
package unit

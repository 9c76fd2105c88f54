// Package phys provides fixed-precision façades over the generic quantity
// core: concrete types like Length, Mass and Temperature with domain-named
// factories and accessors for ergonomic call sites.
//
// 🚀 What is a façade?
//
//	A thin wrapper holding a quantity.Quantity at a fixed precision and
//	dimension family:
//	  • float64 façades: Length, Mass, Duration, Temperature, Area, Volume,
//	    Velocity, Acceleration, Force, Energy, Power, Pressure
//	  • float32 façades for the hot families: Length32, Mass32, Duration32,
//	    Temperature32
//
// ✨ Key properties:
//   - Sugar over FromUnit: FromMeters(5) ≡ quantity.FromUnit(5, meters)
//   - Generic() converts to the generic core losslessly (identity on the
//     raw value); AsLength and friends convert back with a dimension check
//   - Narrowing 64→32 bits is explicit by name (NarrowLength), never an
//     implicit cast; widening is lossless
//   - A nil façade pointer into GenericOf fails with ErrNilQuantity instead
//     of silently defaulting
//
// ⚙️ Usage:
//
//	m := phys.FromKilograms(10)
//	a := phys.FromMetersPerSecondSquared(5)
//	f, err := phys.AsForce(m.Generic().Mul(a.Generic()))
//	fmt.Println(f.Newtons()) // 50
package phys

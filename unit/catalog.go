package unit

import "github.com/katalvlaran/dimq/dimension"

// Builtin conversion factors, all expressed toward the SI base unit of the
// owning dimension. Imperial factors are the exact international definitions.
const (
	metersPerKilometer    = 1000.0
	metersPerMile         = 1609.344
	metersPerYard         = 0.9144
	metersPerFoot         = 0.3048
	metersPerInch         = 0.0254
	metersPerNauticalMile = 1852.0

	kilogramsPerTonne = 1000.0
	kilogramsPerPound = 0.45359237
	kilogramsPerOunce = 0.028349523125
	kilogramsPerStone = 6.35029318

	secondsPerMinute = 60.0
	secondsPerHour   = 3600.0
	secondsPerDay    = 86400.0
	secondsPerWeek   = 604800.0

	// Celsius→Kelvin: K = C + 273.15.
	kelvinOffsetCelsius = 273.15
	// Fahrenheit→Kelvin: K = F*5/9 + 459.67*5/9.
	fahrenheitScale  = 5.0 / 9.0
	fahrenheitOffset = 459.67 * 5.0 / 9.0

	squareMetersPerHectare    = 1e4
	squareMetersPerAcre       = 4046.8564224
	squareMetersPerSquareFoot = metersPerFoot * metersPerFoot

	cubicMetersPerLiter     = 1e-3
	cubicMetersPerGallon    = 0.003785411784
	cubicMetersPerCubicFoot = metersPerFoot * metersPerFoot * metersPerFoot

	mpsPerKilometerPerHour = metersPerKilometer / secondsPerHour
	mpsPerMilePerHour      = metersPerMile / secondsPerHour
	mpsPerKnot             = metersPerNauticalMile / secondsPerHour
	mpsPerFootPerSecond    = metersPerFoot

	standardGravity = 9.80665

	newtonsPerPoundForce = 4.4482216152605
	newtonsPerDyne       = 1e-5

	joulesPerCalorie      = 4.184
	joulesPerWattHour     = 3600.0
	joulesPerKilowattHour = 3.6e6
	joulesPerBTU          = 1055.05585262
	joulesPerElectronvolt = 1.602176634e-19

	wattsPerHorsepower = 745.69987158227022

	pascalsPerBar        = 1e5
	pascalsPerAtmosphere = 101325.0
	pascalsPerPSI        = 6894.757293168361

	bitsPerByte = 8.0
)

// catalog lists every builtin unit, grouped by dimension. The first entry
// of each group is its base and must be an identity conversion.
var catalog = [][]Unit{
	{
		New("meters", dimension.Length, 1),
		New("kilometers", dimension.Length, metersPerKilometer),
		New("centimeters", dimension.Length, 1e-2),
		New("millimeters", dimension.Length, 1e-3),
		New("micrometers", dimension.Length, 1e-6),
		New("nanometers", dimension.Length, 1e-9),
		New("miles", dimension.Length, metersPerMile),
		New("yards", dimension.Length, metersPerYard),
		New("feet", dimension.Length, metersPerFoot),
		New("inches", dimension.Length, metersPerInch),
		New("nautical miles", dimension.Length, metersPerNauticalMile),
	},
	{
		New("kilograms", dimension.Mass, 1),
		New("grams", dimension.Mass, 1e-3),
		New("milligrams", dimension.Mass, 1e-6),
		New("micrograms", dimension.Mass, 1e-9),
		New("tonnes", dimension.Mass, kilogramsPerTonne),
		New("pounds", dimension.Mass, kilogramsPerPound),
		New("ounces", dimension.Mass, kilogramsPerOunce),
		New("stones", dimension.Mass, kilogramsPerStone),
	},
	{
		New("seconds", dimension.Time, 1),
		New("milliseconds", dimension.Time, 1e-3),
		New("microseconds", dimension.Time, 1e-6),
		New("nanoseconds", dimension.Time, 1e-9),
		New("minutes", dimension.Time, secondsPerMinute),
		New("hours", dimension.Time, secondsPerHour),
		New("days", dimension.Time, secondsPerDay),
		New("weeks", dimension.Time, secondsPerWeek),
	},
	{
		New("amperes", dimension.Current, 1),
		New("milliamperes", dimension.Current, 1e-3),
		New("kiloamperes", dimension.Current, 1e3),
	},
	{
		New("kelvin", dimension.Temperature, 1),
		NewAffine("celsius", dimension.Temperature, 1, kelvinOffsetCelsius),
		NewAffine("fahrenheit", dimension.Temperature, fahrenheitScale, fahrenheitOffset),
	},
	{
		New("moles", dimension.Amount, 1),
		New("millimoles", dimension.Amount, 1e-3),
	},
	{
		New("candelas", dimension.LuminousIntensity, 1),
	},
	// Currency tables are deployment-specific; only the generic base is builtin.
	{
		New("credits", dimension.Currency, 1),
	},
	{
		New("bits", dimension.Information, 1),
		New("bytes", dimension.Information, bitsPerByte),
		New("kilobits", dimension.Information, 1e3),
		New("kilobytes", dimension.Information, bitsPerByte*1e3),
		New("megabits", dimension.Information, 1e6),
		New("megabytes", dimension.Information, bitsPerByte*1e6),
		New("gigabytes", dimension.Information, bitsPerByte*1e9),
		New("kibibytes", dimension.Information, bitsPerByte*1024),
		New("mebibytes", dimension.Information, bitsPerByte*1024*1024),
	},
	{
		New("square meters", dimension.Area, 1),
		New("square kilometers", dimension.Area, 1e6),
		New("square centimeters", dimension.Area, 1e-4),
		New("square feet", dimension.Area, squareMetersPerSquareFoot),
		New("hectares", dimension.Area, squareMetersPerHectare),
		New("acres", dimension.Area, squareMetersPerAcre),
	},
	{
		New("cubic meters", dimension.Volume, 1),
		New("liters", dimension.Volume, cubicMetersPerLiter),
		New("milliliters", dimension.Volume, 1e-6),
		New("cubic feet", dimension.Volume, cubicMetersPerCubicFoot),
		New("gallons", dimension.Volume, cubicMetersPerGallon),
	},
	{
		New("meters per second", dimension.Velocity, 1),
		New("kilometers per hour", dimension.Velocity, mpsPerKilometerPerHour),
		New("miles per hour", dimension.Velocity, mpsPerMilePerHour),
		New("knots", dimension.Velocity, mpsPerKnot),
		New("feet per second", dimension.Velocity, mpsPerFootPerSecond),
	},
	{
		New("meters per second squared", dimension.Acceleration, 1),
		New("standard gravity", dimension.Acceleration, standardGravity),
		New("feet per second squared", dimension.Acceleration, metersPerFoot),
	},
	{
		New("newtons", dimension.Force, 1),
		New("kilonewtons", dimension.Force, 1e3),
		New("dynes", dimension.Force, newtonsPerDyne),
		New("pounds force", dimension.Force, newtonsPerPoundForce),
	},
	{
		New("joules", dimension.Energy, 1),
		New("kilojoules", dimension.Energy, 1e3),
		New("calories", dimension.Energy, joulesPerCalorie),
		New("kilocalories", dimension.Energy, joulesPerCalorie*1e3),
		New("watt hours", dimension.Energy, joulesPerWattHour),
		New("kilowatt hours", dimension.Energy, joulesPerKilowattHour),
		New("btus", dimension.Energy, joulesPerBTU),
		New("electronvolts", dimension.Energy, joulesPerElectronvolt),
	},
	{
		New("watts", dimension.Power, 1),
		New("kilowatts", dimension.Power, 1e3),
		New("megawatts", dimension.Power, 1e6),
		New("horsepower", dimension.Power, wattsPerHorsepower),
	},
	{
		New("pascals", dimension.Pressure, 1),
		New("kilopascals", dimension.Pressure, 1e3),
		New("bars", dimension.Pressure, pascalsPerBar),
		New("millibars", dimension.Pressure, 1e2),
		New("atmospheres", dimension.Pressure, pascalsPerAtmosphere),
		New("psi", dimension.Pressure, pascalsPerPSI),
	},
	{
		New("hertz", dimension.Frequency, 1),
		New("kilohertz", dimension.Frequency, 1e3),
		New("megahertz", dimension.Frequency, 1e6),
		New("gigahertz", dimension.Frequency, 1e9),
	},
}

// init populates the default registry with the builtin catalog. Any failure
// here is a programming error in the tables above, hence the panic.
func init() {
	for _, family := range catalog {
		for i, u := range family {
			var err error
			if i == 0 {
				err = defaultRegistry.RegisterBase(u)
			} else {
				err = defaultRegistry.Register(u)
			}
			if err != nil {
				panic(err)
			}
		}
	}
}

package dimension

import "strings"

// renderOrder lists axes in conventional symbol order, so Force renders as
// kg·m/s² rather than m·kg/s².
var renderOrder = [NumAxes]Axis{
	AxisMass, AxisLength, AxisTime, AxisCurrent, AxisTemperature,
	AxisAmount, AxisLuminosity, AxisCurrency, AxisInformation,
}

// superscripts maps decimal digits to their Unicode superscript forms.
var superscripts = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// String derives a human-readable symbol from the exponent vector:
// positive-exponent axes joined with '·', negative-exponent axes after '/'
// (parenthesized when there is more than one), exponent 1 left implicit.
//
//	Length      → "m"
//	Area        → "m²"
//	Force       → "kg·m/s²"
//	Pressure    → "kg/(m·s²)"
//	Frequency   → "1/s"
//	Scalar      → "1"
func (d Dimension) String() string {
	var num, den []string
	for _, a := range renderOrder {
		switch e := int(d[a]); {
		case e > 0:
			num = append(num, term(a.Symbol(), e))
		case e < 0:
			den = append(den, term(a.Symbol(), -e))
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return "1"
	case len(den) == 0:
		return strings.Join(num, "·")
	case len(num) == 0:
		return "1/" + wrap(den)
	default:
		return strings.Join(num, "·") + "/" + wrap(den)
	}
}

// term renders one axis symbol with its positive exponent, omitting ¹.
func term(sym string, e int) string {
	if e == 1 {
		return sym
	}

	return sym + super(e)
}

// super renders a positive integer as superscript digits.
func super(e int) string {
	if e < 10 {
		return string(superscripts[e])
	}

	var sb strings.Builder
	var digits []rune
	for ; e > 0; e /= 10 {
		digits = append(digits, superscripts[e%10])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(digits[i])
	}

	return sb.String()
}

// wrap parenthesizes a multi-term denominator.
func wrap(den []string) string {
	if len(den) == 1 {
		return den[0]
	}

	return "(" + strings.Join(den, "·") + ")"
}

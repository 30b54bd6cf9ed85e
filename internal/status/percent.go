// internal/status/percent.go
package status

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to print any float64 >= 2^-8 exactly.
// Smaller magnitudes always round to 0.0, so they never sit on a tie.
const exactDigits = 60

// Percent is a percentage rounded to one decimal place, the way the panel
// displays it. Threshold checks compare the rounded value, so 80.04 shows
// "80.0" and is not above 80.
type Percent struct {
	d       decimal.Decimal
	special string // NaN / Infinity spelling, empty for finite values

	// negZero marks a negative value that rounds to zero. It prints "-0.0";
	// a true -0 does not, since -0 < 0 is false.
	negZero bool
}

// FormatPercent rounds v to one decimal place using the exact binary value
// of v, with ties rounded away from zero (82.25 -> "82.3", 82.35 -> "82.3").
func FormatPercent(v float64) Percent {
	switch {
	case math.IsNaN(v):
		return Percent{special: "NaN"}
	case math.IsInf(v, 1):
		return Percent{special: "Infinity"}
	case math.IsInf(v, -1):
		return Percent{special: "-Infinity"}
	}

	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	if err != nil {
		// FormatFloat output of a finite value is always a valid decimal.
		d = decimal.NewFromFloat(v)
	}
	d = d.Round(1)
	return Percent{d: d, negZero: v < 0 && d.IsZero()}
}

// String returns the value with exactly one decimal place, without a unit.
func (p Percent) String() string {
	if p.special != "" {
		return p.special
	}
	if p.negZero {
		return "-0.0"
	}
	return p.d.StringFixed(1)
}

// WithUnit returns the value followed by "%".
func (p Percent) WithUnit() string {
	return p.String() + "%"
}

// Above reports whether the displayed value is strictly greater than limit.
func (p Percent) Above(limit int64) bool {
	switch p.special {
	case "":
		return p.d.GreaterThan(decimal.NewFromInt(limit))
	case "Infinity":
		return true
	default:
		return false
	}
}

// Float returns the displayed value as a float64. NaN stays NaN.
func (p Percent) Float() float64 {
	switch p.special {
	case "":
		return p.d.InexactFloat64()
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// Tenths returns the displayed value times ten, clamped to the uint16 range.
func (p Percent) Tenths() uint16 {
	switch p.special {
	case "":
	case "Infinity":
		return math.MaxUint16
	default:
		return 0
	}

	t := p.d.Shift(1).IntPart()
	if t < 0 {
		return 0
	}
	if t > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(t)
}

// Package textfix repairs known encoding damage in instrument report values.
package textfix

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// CubicCentimeter is the unit glyph used for volumes.
	CubicCentimeter = "cm³"
	// DegreeCelsius is the unit glyph used for temperatures.
	DegreeCelsius = "°C"
)

// Longer patterns come first; strings.Replacer tries them in order at each position.
var unitReplacer = strings.NewReplacer(
	"Â°", "°",
	"Â³", "³",
	"cm^3", CubicCentimeter,
	"cm?3", CubicCentimeter,
	"cm3", CubicCentimeter,
	"cm?", CubicCentimeter,
	"? C", DegreeCelsius,
	"?C", DegreeCelsius,
	"ø C", DegreeCelsius,
	"øC", DegreeCelsius,
	"ø", "°",
)

var degreeSpacing = regexp.MustCompile(`(\s*)°\s*C`)

// Normalize fixes corrupted renderings of the cubic centimeter and degree
// Celsius symbols. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return s
	}

	s = norm.NFC.String(s)

	// A repair can expose another one ("ÂøC"), so replace until stable.
	for {
		fixed := unitReplacer.Replace(s)
		if fixed == s {
			break
		}
		s = fixed
	}

	return degreeSpacing.ReplaceAllStringFunc(s, func(m string) string {
		if strings.Index(m, "°") > 0 {
			return " " + DegreeCelsius
		}
		return DegreeCelsius
	})
}

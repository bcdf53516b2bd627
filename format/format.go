// Package format renders evaluation results as canonical decimal strings.
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Precision is the number of decimal places kept when cleaning results.
const Precision = 10

// Round rounds v to Precision decimal places, which removes binary
// representation noise such as 0.1+0.2 = 0.30000000000000004.
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', Precision, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0 // Drop the sign of negative zero.
	}
	return r
}

// Format renders v in plain, locale independent decimal notation with no
// exponent, no grouping and no trailing decimal point for integers.
func Format(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}

// Grouped renders v for display with en-US digit grouping, e.g. 1,234.5.
// Its output is not meant to be parsed back.
func Grouped(v float64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(number.Decimal(Round(v), number.MaxFractionDigits(Precision)))
}

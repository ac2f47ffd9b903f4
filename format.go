package ggchart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleFormatter returns a ValueFormatter that renders values with the
// digit grouping and decimal separator of tag, keeping up to maxFraction
// fraction digits. For example language.German renders 1234.5 as "1.234,5".
func LocaleFormatter(tag language.Tag, maxFraction int) ValueFormatter {
	p := message.NewPrinter(tag)
	return func(v float64) string {
		return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(maxFraction)))
	}
}

package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders an amount of minor currency units (cents) for display
type Formatter func(minor int64) string

// USD formats cents as US dollars, e.g. "$1,234.50"
var USD = NewFormatter("$", language.AmericanEnglish)

// NewFormatter builds a two-decimal currency formatter. Digit grouping and the
// decimal separator both follow tag.
func NewFormatter(symbol string, tag language.Tag) Formatter {
	p := message.NewPrinter(tag)
	sep := decimalSeparator(p)
	return func(minor int64) string {
		amount := decimal.New(minor, -2)
		sign := ""
		if amount.IsNegative() {
			sign = "-"
			amount = amount.Abs()
		}

		whole := amount.Truncate(0)
		cents := amount.Sub(whole).Shift(2).IntPart()

		return fmt.Sprintf("%s%s%s%s%02d", sign, symbol, p.Sprintf("%v", whole.IntPart()), sep, cents)
	}
}

// decimalSeparator reads the locale's decimal mark off a formatted 1.5
func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%.1f", 1.5)
	sep := strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
	if sep == "" || sep == s {
		return "."
	}
	return sep
}

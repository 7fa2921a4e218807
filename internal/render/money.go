package render

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.English)

// Money formats d with exactly two decimals, a decimal point and no grouping.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// DisplayMoney formats d for people: two decimals, thousands grouping and an optional
// currency suffix.
func DisplayMoney(d decimal.Decimal, symbol string) string {
	s := displayPrinter.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
	if symbol = strings.TrimSpace(symbol); symbol != "" {
		s += " " + symbol
	}
	return s
}

// Package money formats decimal amounts for display on invoices and in
// API-adjacent surfaces. All internal arithmetic stays in
// shopspring/decimal; this package is presentation only: two fraction
// digits, a configurable currency symbol prefix, and Indian-system digit
// grouping (1,23,456.78) via the en-IN locale.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the rupee sign used when no symbol is configured.
const DefaultSymbol = "₹"

// Formatter renders decimal amounts as currency strings.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter with the given currency symbol.
// An empty symbol falls back to DefaultSymbol.
func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.MustParse("en-IN")),
	}
}

// Amount renders d with the currency symbol: "₹1,23,456.78".
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.symbol + f.Plain(d)
}

// Plain renders d without the symbol, always with two fraction digits
// and Indian grouping. The decimal is rounded to two places before the
// float conversion so display rounding happens on exact arithmetic.
func (f *Formatter) Plain(d decimal.Decimal) string {
	rounded := d.Round(2)
	return f.printer.Sprintf("%v", number.Decimal(
		rounded.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

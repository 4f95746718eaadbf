// Package money formats amounts for humans.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats amounts in a currency for a locale.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

var symbols = map[currency.Unit]string{
	currency.BRL: "R$",
	currency.USD: "US$",
	currency.EUR: "€",
	currency.GBP: "£",
}

// NewFormatter returns a Formatter for the BCP 47 locale and ISO 4217
// currency code.
func NewFormatter(locale, code string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale '%s': %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency '%s': %w", code, err)
	}

	return Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

// Default formats Brazilian reais for pt-BR.
func Default() Formatter {
	return Formatter{
		printer: message.NewPrinter(language.BrazilianPortuguese),
		unit:    currency.BRL,
	}
}

// Symbol returns the symbol of the currency, or its ISO code
// if no symbol is known.
func (f Formatter) Symbol() string {
	if s, ok := symbols[f.unit]; ok {
		return s
	}
	return f.unit.String()
}

// Format renders amount with two decimals and the currency symbol,
// using the grouping and decimal separators of the locale.
func (f Formatter) Format(amount decimal.Decimal) string {
	value := amount.Round(2).InexactFloat64()
	if value < 0 {
		return f.printer.Sprintf("-%s %.2f", f.Symbol(), -value)
	}
	return f.printer.Sprintf("%s %.2f", f.Symbol(), value)
}

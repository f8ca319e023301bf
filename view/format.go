package view

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers for one locale and currency. Values are only read.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	code    string
	hasUnit bool
}

// NewFormatter falls back to Indonesian for an unknown locale and to a plain
// number with the code as prefix for an unknown currency.
func NewFormatter(locale, currencyCode string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Indonesian
	}

	f := &Formatter{
		printer: message.NewPrinter(tag),
		code:    strings.ToUpper(strings.TrimSpace(currencyCode)),
	}
	if unit, err := currency.ParseISO(f.code); err == nil {
		f.unit = unit
		f.hasUnit = true
	}
	return f
}

// Integer prints v with grouping and no decimals.
func (f *Formatter) Integer(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// Fixed prints v with exactly decimals fraction digits.
func (f *Formatter) Fixed(v float64, decimals int) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Money prints v as a cash amount of the configured currency.
func (f *Formatter) Money(v float64) string {
	if !f.hasUnit {
		return strings.TrimSpace(f.code + " " + f.Integer(v))
	}
	return f.printer.Sprint(currency.Symbol.Kind(currency.Cash)(f.unit.Amount(v)))
}

// ParseAmount reads a number typed in the locale's notation, so "1.000.000"
// and "1.000.000,5" parse for id-ID and "1,000,000.5" for en-US. Underscores
// and spaces are ignored.
func (f *Formatter) ParseAmount(text string) (float64, bool) {
	group, decimal := f.separators()

	cleaned := strings.NewReplacer("_", "", " ", "", "\u00a0", "", group, "").Replace(strings.TrimSpace(text))
	if decimal != "." {
		cleaned = strings.ReplaceAll(cleaned, decimal, ".")
	}
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// separators derives the grouping and decimal marks from a formatted sample.
func (f *Formatter) separators() (group, decimal string) {
	sample := []rune(f.printer.Sprint(number.Decimal(1234.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	)))
	group, decimal = ",", "."
	if len(sample) == 7 {
		group, decimal = string(sample[1]), string(sample[5])
	}
	return group, decimal
}

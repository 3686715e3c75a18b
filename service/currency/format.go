package currency

import (
	"strings"

	"bookjam/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// languages that write the symbol after the amount
var symbolAfter = map[string]bool{
	"ar": true, "de": true, "es": true, "fr": true, "it": true, "nl": true, "pt": true,
}

// Format renders an amount already in c's units: grouping and decimal marks come
// from c.Locale, the symbol from the table. The base currency shows no forced
// fraction digits; every other currency shows exactly two.
func Format(c model.Currency, amount float64) string {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		tag = language.English
	}
	minFD := 2
	if c.Code == model.BaseCurrency {
		minFD = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(tag)
	num := p.Sprint(number.Decimal(amount, number.MinFractionDigits(minFD), number.MaxFractionDigits(2)))

	base, _ := tag.Base()
	if symbolAfter[base.String()] {
		return sign + num + "\u00a0" + c.Symbol
	}
	return sign + c.Symbol + strings.TrimSpace(num)
}

package output

import (
	"strings"

	"github.com/shopspring/decimal"
	money "github.com/sparplan/savings-calculator/pkg/decimal"
)

// Locale selects number punctuation for rendered amounts.
type Locale struct {
	Tag      string
	Group    string
	Decimal  string
	EuroLast bool // "1.234,50 €" rather than "€1,234.50"
}

var (
	LocaleDE = Locale{Tag: "de-DE", Group: ".", Decimal: ",", EuroLast: true}
	LocaleEN = Locale{Tag: "en-US", Group: ",", Decimal: "."}
)

// nbsp separates amount and currency sign in German output.
const nbsp = "\u00a0"

// ParseLocale maps a language tag onto a supported locale. German tags
// (de, de-DE, de_AT) select LocaleDE; everything else falls back to LocaleEN.
func ParseLocale(tag string) Locale {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "de" || strings.HasPrefix(t, "de-") || strings.HasPrefix(t, "de_") {
		return LocaleDE
	}
	return LocaleEN
}

// FormatEuro renders amount as euros with exactly two fraction digits.
func FormatEuro(amount decimal.Decimal, loc Locale) string {
	m := money.NewMoneyFromDecimal(amount).Round()
	// sign is taken after rounding, so -0.001 renders as 0.00 without a minus
	sign := ""
	if m.IsNegative() {
		sign = "-"
	}
	digits := loc.number(m.Decimal.Abs().StringFixed(2))
	if loc.EuroLast {
		return sign + digits + nbsp + "€"
	}
	return sign + "€" + digits
}

// FormatPercent renders a fraction (0.075) as a percentage ("7.5%") with at
// most digits fraction digits.
func FormatPercent(fraction decimal.Decimal, loc Locale, digits int32) string {
	if digits < 0 {
		digits = 0
	}
	p := money.FractionToPercent(fraction).Round(digits)
	// as in FormatEuro, values that round to zero carry no sign
	sign := ""
	if p.IsNegative() {
		sign = "-"
	}
	return sign + loc.number(p.Abs().String()) + "%"
}

// FormatNumber renders a plain number with the locale's punctuation and no
// trailing zeros ("180", "1.500.000", "2,5").
func FormatNumber(n decimal.Decimal, loc Locale) string {
	sign := ""
	if n.IsNegative() {
		sign = "-"
	}
	return sign + loc.number(n.Abs().String())
}

// number re-punctuates an unsigned "1234567.89" string.
func (loc Locale) number(plain string) string {
	intPart, frac, hasFrac := strings.Cut(plain, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(loc.Group)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(loc.Decimal)
		b.WriteString(frac)
	}
	return b.String()
}

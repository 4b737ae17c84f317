package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseLocale(t *testing.T) {
	for _, tag := range []string{"de", "DE", "de-DE", "de_AT", " de-CH "} {
		assert.Equal(t, LocaleDE, ParseLocale(tag), tag)
	}
	for _, tag := range []string{"", "en", "en-US", "fr-FR", "dex"} {
		assert.Equal(t, LocaleEN, ParseLocale(tag), tag)
	}
}

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		amount string
		loc    Locale
		want   string
	}{
		{"1500000", LocaleDE, "1.500.000,00\u00a0€"},
		{"1500000", LocaleEN, "€1,500,000.00"},
		{"150", LocaleDE, "150,00\u00a0€"},
		{"0", LocaleEN, "€0.00"},
		{"999.995", LocaleEN, "€1,000.00"},
		{"1234.5", LocaleEN, "€1,234.50"},
		{"-1234.5", LocaleEN, "-€1,234.50"},
		{"-1234.5", LocaleDE, "-1.234,50\u00a0€"},
		{"-0.001", LocaleEN, "€0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEuro(d(tt.amount), tt.loc), "FormatEuro(%s, %s)", tt.amount, tt.loc.Tag)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		fraction string
		loc      Locale
		digits   int32
		want     string
	}{
		{"0.07", LocaleDE, 2, "7%"},
		{"0.075", LocaleDE, 2, "7,5%"},
		{"0.075", LocaleEN, 2, "7.5%"},
		{"0.075", LocaleEN, 0, "8%"},
		{"0.123456", LocaleEN, 2, "12.35%"},
		{"-0.015", LocaleDE, 2, "-1,5%"},
		{"12.5", LocaleDE, 2, "1.250%"},
		{"0", LocaleEN, 2, "0%"},
		{"0.5", LocaleEN, -1, "50%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercent(d(tt.fraction), tt.loc, tt.digits), "FormatPercent(%s)", tt.fraction)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "180", FormatNumber(d("180"), LocaleDE))
	assert.Equal(t, "2,5", FormatNumber(d("2.5"), LocaleDE))
	assert.Equal(t, "1,500,000", FormatNumber(d("1500000"), LocaleEN))
	assert.Equal(t, "-1.2", FormatNumber(d("-1.2"), LocaleEN))
}

package decimal

import (
	"github.com/shopspring/decimal"
)

// hundred converts between percentage points and fractions.
var hundred = decimal.NewFromInt(100)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// CeilWhole rounds the amount up to the next whole currency unit
func (m Money) CeilWhole() Money {
	return Money{m.Decimal.Ceil()}
}

// ApplyTaxRate returns the amount left after withholding rate (a fraction).
// A rate that is zero or negative leaves the amount untouched.
func (m Money) ApplyTaxRate(rate decimal.Decimal) Money {
	if !rate.IsPositive() {
		return m
	}
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Sub(rate))}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// PercentToFraction turns percentage points (7) into a fraction (0.07).
func PercentToFraction(points decimal.Decimal) decimal.Decimal {
	return points.Div(hundred)
}

// FractionToPercent turns a fraction (0.07) into percentage points (7).
func FractionToPercent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred)
}

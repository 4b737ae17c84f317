package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/sparplan/savings-calculator/internal/domain"
	money "github.com/sparplan/savings-calculator/pkg/decimal"
)

// MonthsPerYear converts a duration in years into months.
var MonthsPerYear = decimal.NewFromInt(12)

// SavingsCalculator derives the savings plan parameters from a form.
// It holds no state besides its logger, so one instance can serve
// concurrent callers.
type SavingsCalculator struct {
	Logger Logger
}

// NewSavingsCalculator creates a calculator with a no-op logger.
func NewSavingsCalculator() *SavingsCalculator {
	return &SavingsCalculator{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculator. If nil is provided, a no-op logger is used.
func (sc *SavingsCalculator) SetLogger(l Logger) {
	if l == nil {
		sc.Logger = NopLogger{}
		return
	}
	sc.Logger = l
}

func (sc *SavingsCalculator) logger() Logger {
	if sc == nil || sc.Logger == nil {
		return NopLogger{}
	}
	return sc.Logger
}

// Calculate evaluates form against the nominal (pre-tax) periodic deposit.
// Missing or invalid values count as zero, so partially filled forms still
// produce a renderable result.
func (sc *SavingsCalculator) Calculate(form domain.SavingsForm, nominalDeposit decimal.Decimal) domain.SavingsResult {
	log := sc.logger()

	returnRate := money.PercentToFraction(CoerceNumber(form.ReturnRate))
	taxRate := money.PercentToFraction(CoerceNumber(form.Tax))
	months := CoerceNumber(form.Duration).Mul(MonthsPerYear)
	frequency := ClassifyFrequency(form.DepositType)
	capital := CoerceNumber(form.Capital)

	net := NetPeriodicDeposit(nominalDeposit, taxRate)
	breakEven := BreakEvenContribution(capital, net)

	log.Debugf("savings form: return_rate=%v tax=%v duration=%v deposit_type=%v capital=%v",
		form.ReturnRate, form.Tax, form.Duration, form.DepositType, form.Capital)
	log.Debugf("  annual return rate: %s", returnRate.String())
	log.Debugf("  tax rate: %s", taxRate.String())
	log.Debugf("  total months: %s (%s)", months.String(), frequency)
	log.Debugf("  net deposit: %s of nominal %s", net.String(), nominalDeposit.String())
	log.Debugf("  break-even contribution: %s", breakEven.String())

	return domain.SavingsResult{
		AnnualReturnRate:      returnRate,
		TaxRate:               taxRate,
		TotalMonths:           months,
		Frequency:             frequency,
		IsMonthly:             frequency.IsMonthly(),
		StartingCapital:       capital,
		NominalDeposit:        nominalDeposit,
		NetPeriodicDeposit:    net,
		BreakEvenContribution: breakEven,
	}
}

// NetPeriodicDeposit returns the deposit left after taxRate (a fraction).
// Without a positive tax rate the nominal deposit is returned as is.
func NetPeriodicDeposit(nominal, taxRate decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(nominal).ApplyTaxRate(taxRate).Decimal
}

// BreakEvenContribution is capital times the net deposit, rounded up to a
// whole unit.
func BreakEvenContribution(capital, netDeposit decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(capital).Mul(netDeposit).CeilWhole().Decimal
}

var defaultCalculator = NewSavingsCalculator()

// Calculate evaluates form with a calculator that does not log.
func Calculate(form domain.SavingsForm, nominalDeposit decimal.Decimal) domain.SavingsResult {
	return defaultCalculator.Calculate(form, nominalDeposit)
}

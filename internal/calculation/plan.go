package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/sparplan/savings-calculator/internal/domain"
)

// SavingsPlan keeps the latest form snapshot and nominal deposit and
// evaluates them on demand. Callers replace the inputs whenever the form
// changes and pull Result when they need to render.
//
// A SavingsPlan is not safe for concurrent mutation.
type SavingsPlan struct {
	calc    *SavingsCalculator
	form    domain.SavingsForm
	deposit decimal.Decimal
}

// NewSavingsPlan creates a plan evaluated by calc (a silent calculator if nil).
func NewSavingsPlan(calc *SavingsCalculator) *SavingsPlan {
	if calc == nil {
		calc = NewSavingsCalculator()
	}
	return &SavingsPlan{calc: calc}
}

// NewSavingsPlanFromInput creates a plan seeded with a loaded plan input.
func NewSavingsPlanFromInput(calc *SavingsCalculator, in domain.PlanInput) *SavingsPlan {
	p := NewSavingsPlan(calc)
	p.SetForm(in.Form)
	p.SetNominalDeposit(CoerceNumber(in.NominalDeposit))
	return p
}

// SetForm replaces the form snapshot.
func (p *SavingsPlan) SetForm(form domain.SavingsForm) { p.form = form }

// SetField updates a single form field (any key spelling).
func (p *SavingsPlan) SetField(key string, value any) error { return p.form.Set(key, value) }

// SetNominalDeposit replaces the pre-tax periodic deposit.
func (p *SavingsPlan) SetNominalDeposit(d decimal.Decimal) { p.deposit = d }

// Form returns the current form snapshot.
func (p *SavingsPlan) Form() domain.SavingsForm { return p.form }

// NominalDeposit returns the current pre-tax periodic deposit.
func (p *SavingsPlan) NominalDeposit() decimal.Decimal { return p.deposit }

// Result evaluates the current inputs.
func (p *SavingsPlan) Result() domain.SavingsResult {
	return p.calc.Calculate(p.form, p.deposit)
}

// Report bundles the current inputs with their result for the formatters.
func (p *SavingsPlan) Report() *domain.SavingsReport {
	return &domain.SavingsReport{
		Input:  domain.PlanInput{Form: p.form, NominalDeposit: p.deposit},
		Result: p.Result(),
	}
}

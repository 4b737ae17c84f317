package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Form field keys in their canonical (snake_case) spelling.
const (
	FieldReturnRate  = "return_rate"
	FieldTax         = "tax"
	FieldDuration    = "duration"
	FieldDepositType = "deposit_type"
	FieldCapital     = "capital"
)

// FormFields lists the canonical form keys in display order.
var FormFields = []string{FieldReturnRate, FieldTax, FieldDuration, FieldDepositType, FieldCapital}

// SavingsForm is the raw savings plan form as entered by the user.
// Values are kept loosely typed (numbers, numeric strings, nil, junk);
// the calculation package owns turning them into numbers.
type SavingsForm struct {
	ReturnRate  any `yaml:"return_rate,omitempty" json:"returnRate,omitempty"`   // % per year, e.g. "7"
	Tax         any `yaml:"tax,omitempty" json:"tax,omitempty"`                 // % tax, e.g. "25"
	Duration    any `yaml:"duration,omitempty" json:"duration,omitempty"`       // years, e.g. "15"
	DepositType any `yaml:"deposit_type,omitempty" json:"depositType,omitempty"` // e.g. "monatlich", "jährlich"
	Capital     any `yaml:"capital,omitempty" json:"capital,omitempty"`         // starting capital
}

// CanonicalFieldName maps any spelling of a form key (returnRate,
// return_rate, Return-Rate) to its canonical name. ok is false for keys
// that are not part of the form.
func CanonicalFieldName(key string) (name string, ok bool) {
	folded := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(key)))
	for _, f := range FormFields {
		if strings.ReplaceAll(f, "_", "") == folded {
			return f, true
		}
	}
	return "", false
}

// Set assigns a raw value to the field named by key (any spelling).
func (f *SavingsForm) Set(key string, value any) error {
	name, ok := CanonicalFieldName(key)
	if !ok {
		return fmt.Errorf("unknown form field %q", key)
	}
	switch name {
	case FieldReturnRate:
		f.ReturnRate = value
	case FieldTax:
		f.Tax = value
	case FieldDuration:
		f.Duration = value
	case FieldDepositType:
		f.DepositType = value
	case FieldCapital:
		f.Capital = value
	}
	return nil
}

// Get returns the raw value stored under key (any spelling).
func (f SavingsForm) Get(key string) (any, bool) {
	name, ok := CanonicalFieldName(key)
	if !ok {
		return nil, false
	}
	switch name {
	case FieldReturnRate:
		return f.ReturnRate, true
	case FieldTax:
		return f.Tax, true
	case FieldDuration:
		return f.Duration, true
	case FieldDepositType:
		return f.DepositType, true
	default:
		return f.Capital, true
	}
}

// Merge returns a copy of f with every non-nil field of override applied.
func (f SavingsForm) Merge(override SavingsForm) SavingsForm {
	out := f
	for _, key := range FormFields {
		if v, _ := override.Get(key); v != nil {
			_ = out.Set(key, v)
		}
	}
	return out
}

// UnknownFieldError reports form keys that do not name a form field.
type UnknownFieldError struct {
	Keys []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown form field(s): %s", strings.Join(e.Keys, ", "))
}

// DuplicateFieldError reports several keys that name the same form field,
// such as returnRate and return_rate.
type DuplicateFieldError struct {
	Field string
	Keys  []string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("form field %s given more than once: %s", e.Field, strings.Join(e.Keys, ", "))
}

func (f *SavingsForm) setFromMap(raw map[string]any) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var unknown []string
	seen := make(map[string][]string, len(FormFields))
	*f = SavingsForm{}
	for _, k := range keys {
		name, ok := CanonicalFieldName(k)
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		seen[name] = append(seen[name], k)
		_ = f.Set(name, raw[k])
	}
	if len(unknown) > 0 {
		return &UnknownFieldError{Keys: unknown}
	}
	for _, name := range FormFields {
		if len(seen[name]) > 1 {
			*f = SavingsForm{}
			return &DuplicateFieldError{Field: name, Keys: seen[name]}
		}
	}
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for SavingsForm so that
// keys are matched regardless of casing and separators.
func (f *SavingsForm) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("form must be a mapping: %w", err)
	}
	return f.setFromMap(raw)
}

// UnmarshalJSON accepts the same loose key spelling as UnmarshalYAML.
func (f *SavingsForm) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("form must be an object: %w", err)
	}
	return f.setFromMap(raw)
}

// MarshalJSON writes the form with non-finite numbers (YAML .nan, .inf)
// spelled as strings, which encoding/json cannot represent otherwise.
func (f SavingsForm) MarshalJSON() ([]byte, error) {
	type plain SavingsForm
	return json.Marshal(plain{
		ReturnRate:  jsonSafe(f.ReturnRate),
		Tax:         jsonSafe(f.Tax),
		Duration:    jsonSafe(f.Duration),
		DepositType: jsonSafe(f.DepositType),
		Capital:     jsonSafe(f.Capital),
	})
}

// jsonSafe rewrites the raw values YAML decoding can produce but
// encoding/json rejects: NaN and infinities, and maps with non-string keys.
func jsonSafe(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return strconv.FormatFloat(float64(x), 'g', -1, 32)
		}
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = jsonSafe(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = jsonSafe(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = jsonSafe(e)
		}
		return out
	}
	return v
}

// DepositFrequency classifies how often the periodic deposit is paid.
type DepositFrequency string

const (
	DepositMonthly DepositFrequency = "monthly"
	// DepositAnnual also covers every deposit type that is not monthly.
	DepositAnnual DepositFrequency = "annual"
)

// IsMonthly reports whether deposits are paid monthly.
func (d DepositFrequency) IsMonthly() bool { return d == DepositMonthly }

// SavingsResult holds the values derived from a SavingsForm and a nominal
// periodic deposit. Rates are fractions (0.07 for 7%).
type SavingsResult struct {
	AnnualReturnRate      decimal.Decimal  `yaml:"annual_return_rate" json:"annualReturnRate"`
	TaxRate               decimal.Decimal  `yaml:"tax_rate" json:"taxRate"`
	TotalMonths           decimal.Decimal  `yaml:"total_months" json:"totalMonths"`
	Frequency             DepositFrequency `yaml:"frequency" json:"frequency"`
	IsMonthly             bool             `yaml:"is_monthly" json:"isMonthly"`
	StartingCapital       decimal.Decimal  `yaml:"starting_capital" json:"startingCapital"`
	NominalDeposit        decimal.Decimal  `yaml:"nominal_deposit" json:"nominalDeposit"`
	NetPeriodicDeposit    decimal.Decimal  `yaml:"net_periodic_deposit" json:"netPeriodicDeposit"`
	BreakEvenContribution decimal.Decimal  `yaml:"break_even_contribution" json:"breakEvenContribution"`
}

// PlanInput is a form snapshot together with the nominal deposit it is
// evaluated against.
type PlanInput struct {
	Form           SavingsForm `yaml:"form" json:"form"`
	NominalDeposit any         `yaml:"nominal_deposit,omitempty" json:"nominalDeposit,omitempty"`
}

// MarshalJSON applies the same non-finite number handling as
// SavingsForm.MarshalJSON to the nominal deposit.
func (p PlanInput) MarshalJSON() ([]byte, error) {
	type plain PlanInput
	return json.Marshal(plain{Form: p.Form, NominalDeposit: jsonSafe(p.NominalDeposit)})
}

// SavingsReport is what the output formatters render.
type SavingsReport struct {
	Input  PlanInput     `yaml:"input" json:"input"`
	Result SavingsResult `yaml:"result" json:"result"`
}

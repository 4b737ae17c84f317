package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sparplan/savings-calculator/internal/domain"
	"github.com/sparplan/savings-calculator/internal/output"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormField is returned when a plan file or assignment names a
// field the savings form does not have.
var ErrUnknownFormField = errors.New("unknown form field")

// ErrDuplicateFormField is returned when a plan file spells the same form
// field more than once (returnRate and return_rate).
var ErrDuplicateFormField = errors.New("duplicate form field")

// Configuration is the content of a savings plan file.
type Configuration struct {
	Form           domain.SavingsForm `yaml:"form"`
	NominalDeposit any                `yaml:"nominal_deposit,omitempty"`
	Output         OutputSettings     `yaml:"output,omitempty"`
}

// OutputSettings selects how results are rendered.
type OutputSettings struct {
	Format string `yaml:"format,omitempty"`
	Locale string `yaml:"locale,omitempty"`
}

// PlanInput returns the calculator input described by the configuration.
func (c *Configuration) PlanInput() domain.PlanInput {
	return domain.PlanInput{Form: c.Form, NominalDeposit: c.NominalDeposit}
}

// InputParser handles parsing of savings plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	config, err := ip.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// Parse decodes and validates a plan from r. JSON input is accepted since
// it is valid YAML.
func (ip *InputParser) Parse(r io.Reader) (*Configuration, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var config Configuration
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			// an empty file is an empty form
			return &config, nil
		}
		var unknown *domain.UnknownFieldError
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormField, strings.Join(unknown.Keys, ", "))
		}
		var dup *domain.DuplicateFieldError
		if errors.As(err, &dup) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFormField, strings.Join(dup.Keys, ", "))
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration checks the parts of a plan that are not subject to
// numeric coercion. Form values themselves are never rejected.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if config.Output.Format != "" && output.GetFormatterByName(config.Output.Format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, config.Output.Format)
	}
	switch config.NominalDeposit.(type) {
	case map[string]any, []any:
		return fmt.Errorf("nominal_deposit must be a scalar")
	}
	return nil
}

// ParseFormAssignments builds a form from "key=value" pairs. Keys accept
// any spelling CanonicalFieldName understands; values stay strings and are
// coerced by the calculator.
func ParseFormAssignments(pairs []string) (domain.SavingsForm, error) {
	var form domain.SavingsForm
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return domain.SavingsForm{}, fmt.Errorf("invalid assignment %q, expected key=value", pair)
		}
		if err := form.Set(key, value); err != nil {
			return domain.SavingsForm{}, fmt.Errorf("%w: %q", ErrUnknownFormField, strings.TrimSpace(key))
		}
	}
	return form, nil
}

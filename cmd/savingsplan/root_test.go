package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sparplan/savings-calculator/internal/config"
	"github.com/sparplan/savings-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCalc_Flags(t *testing.T) {
	out, _, err := execute(t, "calc",
		"--return-rate", "7", "--tax", "25", "--duration", "15",
		"--deposit-type", "monatlich", "--capital", "10000", "--deposit", "200",
		"--format", "json")
	require.NoError(t, err)

	var report struct {
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "0.07", report.Result["annualReturnRate"])
	assert.Equal(t, "180", report.Result["totalMonths"])
	assert.Equal(t, "150", report.Result["netPeriodicDeposit"])
	assert.Equal(t, "1500000", report.Result["breakEvenContribution"])
	assert.Equal(t, true, report.Result["isMonthly"])
}

func TestCalc_EmptyFormDefaultsToGermanConsole(t *testing.T) {
	out, _, err := execute(t, "calc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "SPARPLAN\n"))
	assert.Contains(t, out, "jährlich")
	assert.Contains(t, out, "0,00\u00a0€")
}

func TestCalc_ConfigFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := "form:\n" +
		"  returnRate: 7\n" +
		"  tax: 25\n" +
		"  duration: 15\n" +
		"  depositType: jährlich\n" +
		"  capital: 10000\n" +
		"nominal_deposit: 200\n" +
		"output:\n" +
		"  format: csv\n"
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	out, _, err := execute(t, "calc", "--config", path, "--set", "tax=0", "--deposit", "50")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0.07,0,180,false,10000,50,50,500000", lines[1])

	out, _, err = execute(t, "calc", "--config", path, "--format", "console", "--locale", "en-US")
	require.NoError(t, err)
	assert.Contains(t, out, "€1,500,000.00")
}

func TestCalc_Errors(t *testing.T) {
	_, _, err := execute(t, "calc", "--format", "pdf")
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))

	_, _, err = execute(t, "calc", "--set", "bonus=1")
	assert.True(t, errors.Is(err, config.ErrUnknownFormField))

	_, _, err = execute(t, "calc", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCalc_NonFiniteValuesRenderInEveryFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := "form:\n  tax: .nan\n  capital: .inf\n  duration: 15\nnominal_deposit: -.inf\n"
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	for _, format := range output.AvailableFormatterNames() {
		out, _, err := execute(t, "calc", "--config", path, "--format", format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out, format)
	}

	out, _, err := execute(t, "calc", "--config", path, "--format", "json")
	require.NoError(t, err)
	var report struct {
		Input struct {
			Form           map[string]any `json:"form"`
			NominalDeposit any            `json:"nominalDeposit"`
		} `json:"input"`
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "NaN", report.Input.Form["tax"])
	assert.Equal(t, "+Inf", report.Input.Form["capital"])
	assert.Equal(t, "0", report.Input.NominalDeposit)
	assert.Equal(t, "0", report.Result["taxRate"])
	assert.Equal(t, "0", report.Result["startingCapital"])
	assert.Equal(t, "180", report.Result["totalMonths"])
}

func TestCalc_DuplicateKeysAreRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form:\n  returnRate: 7\n  return_rate: 8\n"), 0o644))

	for i := 0; i < 10; i++ {
		out, _, err := execute(t, "calc", "--config", path, "--format", "csv")
		assert.True(t, errors.Is(err, config.ErrDuplicateFormField), "got %v", err)
		assert.Empty(t, out)
	}
}

func TestCalc_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "calc", "--capital", "2", "--deposit", "2", "--verbose", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "BreakEvenContribution")
	assert.Contains(t, errOut, "DEBUG: ")
	assert.Contains(t, errOut, "break-even contribution: 4")
}

func TestCalc_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	out, errOut, err := execute(t, "calc", "--tax", "25", "--deposit", "100", "--format", "yml", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "net_periodic_deposit")
}

func TestFormatsAndVersion(t *testing.T) {
	out, _, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "formats: console, csv, json, yaml")
	assert.Contains(t, out, "aliases: json-pretty, text, txt, yml")

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "savingsplan dev\n", out)
}

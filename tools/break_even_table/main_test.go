package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Table(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form:\n  tax: 25\n  capital: 10\n"), 0o644))

	var out, errOut bytes.Buffer
	code := run([]string{path, "100", "200", "50"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"Index,NominalDeposit,NetDeposit,BreakEvenContribution",
		"0,100,75,750",
		"1,150,112.5,1125",
		"2,200,150,1500",
	}, lines)
}

func TestRun_BadArguments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form: {}\n"), 0o644))

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"missing args", []string{path}, 2, "usage:"},
		{"bad start", []string{path, "x", "10", "1"}, 2, `invalid start "x"`},
		{"zero step", []string{path, "0", "10", "0"}, 2, "step must be positive"},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.yaml"), "0", "10", "1"}, 1, "failed to read file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &out, &errOut))
			assert.Empty(t, out.String())
			assert.Contains(t, errOut.String(), tt.msg)
		})
	}
}

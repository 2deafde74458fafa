package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fund-selector/domain"
)

const scenarioYAML = `
age: 35
monthly_income: 50000
monthly_expenses: 20000
has_debt_service: true
debt_service_amount: 22000
stated_risk: MEDIUM
`

func runRecommend(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"recommend"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommend_TextOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o600))

	out, err := runRecommend(t, "", "--input", path)
	require.NoError(t, err)

	assert.Contains(t, out, "₹8,000")
	assert.Contains(t, out, "Long-Term (10+ years)")
	assert.Contains(t, out, "44%")
	assert.Contains(t, out, "LOW")
	assert.Contains(t, out, "Debt 80% / Equity 20%")
	assert.Contains(t, out, "Alternative: Large-Cap Index Funds")
	assert.Contains(t, out, "We lowered your risk profile")
}

func TestRecommend_JSONFromStdin(t *testing.T) {
	out, err := runRecommend(t, scenarioYAML, "--input", "-", "--json")
	require.NoError(t, err)

	var p domain.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, domain.RiskLow, p.FinalRisk)
	assert.Equal(t, domain.HorizonLong, p.Horizon)
}

func TestRecommend_InvalidInputs(t *testing.T) {
	_, err := runRecommend(t, "age: 10\nmonthly_income: 0\n", "--input", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Enter a valid age between 16 and 100.")
}

func TestRecommend_NonFiniteAmounts(t *testing.T) {
	cases := []struct {
		yaml string
		msg  string
	}{
		{"age: 30\nmonthly_income: 100000\nmonthly_expenses: .nan\nstated_risk: MEDIUM\n", "Expenses cannot be negative."},
		{"age: 30\nmonthly_income: .inf\nmonthly_expenses: 1000\nstated_risk: MEDIUM\n", "Enter a positive monthly income."},
		{"age: 30\nmonthly_income: 100000\nhas_debt_service: true\ndebt_service_amount: -.inf\nstated_risk: LOW\n", "EMI amount cannot be negative."},
	}
	for _, tc := range cases {
		_, err := runRecommend(t, tc.yaml, "--input", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), tc.msg)
	}
}

func TestRecommend_MissingFile(t *testing.T) {
	_, err := runRecommend(t, "", "--input", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestContractValueCommand(t *testing.T) {
	out, err := runCommand(t, "contract-value", "--start", "2024-01-15", "--end", "2025-01-15", "--monthly", "22500")
	require.NoError(t, err)

	var value domain.ContractValue
	require.NoError(t, json.Unmarshal([]byte(out), &value))
	assert.Equal(t, 13.0, value.Months)
	assert.Equal(t, 292500.0, value.TotalValue)
}

func TestContractValueCommandOutputFormat(t *testing.T) {
	out, err := runCommand(t, "contract-value", "--start", "2024-01-15", "--end", "2025-01-15", "--monthly", "22500")
	require.NoError(t, err)

	want := "{\n\t\"contract_id\": \"\",\n\t\"monthly_value\": 22500,\n\t\"months\": 13,\n\t\"total_value\": 292500\n}\n"
	assert.Equal(t, want, out)
}

func TestContractValueCommandRejectsInvalidDate(t *testing.T) {
	_, err := runCommand(t, "contract-value", "--start", "not-a-date", "--end", "2025-01-15", "--monthly", "100")

	assert.Error(t, err)
}

func TestForecastCommand(t *testing.T) {
	out, err := runCommand(t, "forecast", "--months", "3", "--start", "2024-10")
	require.NoError(t, err)

	var entries []domain.ForecastEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "10-2024", entries[0].Period)
	assert.Equal(t, 72500.0, entries[0].RecurringRevenue)
	assert.Equal(t, 128500.0, entries[0].PotentialRevenue)

	assert.True(t, strings.HasPrefix(out, "[\n\t{\n\t\t\"month\": \"out/2024\",\n\t\t\"period\": \"10-2024\","), out)
}

func TestForecastCommandRejectsInvalidStart(t *testing.T) {
	_, err := runCommand(t, "forecast", "--start", "2024/10")

	assert.Error(t, err)
}

func TestSummaryCommandReadsDatasetFile(t *testing.T) {
	dataset := domain.Dataset{
		Contracts: []domain.Contract{
			{
				ID:           "c1",
				Vertical:     domain.VerticalB2S,
				Company:      "Escola",
				StudentCount: 40,
				MonthlyValue: 4000,
				StartDate:    domain.NewDate(2024, 1, 1),
				EndDate:      domain.NewDate(2024, 12, 31),
				Status:       domain.ContractStatusActive,
			},
		},
	}
	content, err := json.Marshal(dataset)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	out, err := runCommand(t, "summary", "--file", path, "--months", "2")
	require.NoError(t, err)

	var summary domain.DashboardSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 4000.0, summary.CurrentRevenue)
	assert.Equal(t, 40, summary.ActiveStudents)
	assert.Len(t, summary.Forecast, 2)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestSummaryCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "summary", "--file", filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

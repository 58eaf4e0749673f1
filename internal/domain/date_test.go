package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	payload := struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}{Start: NewDate(2024, 1, 15)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-01-15","end":""}`, string(data))
}

func TestDateUnmarshalNeverFails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "data válida", input: `"2024-10-05"`, want: time.Date(2024, 10, 5, 0, 0, 0, 0, time.Local)},
		{name: "vazia", input: `""`},
		{name: "inválida", input: `"31/12/2024"`},
		{name: "null", input: `null`},
		{name: "número", input: `20240101`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "esperado %v, obtido %v", tt.want, d.Time)
		})
	}
}

func TestContractHelpers(t *testing.T) {
	notes := "cliente satisfeito"
	upsell := 5000.0
	contract := Contract{
		Status:               ContractStatusActive,
		StartDate:            NewDate(2025, 1, 1),
		EndDate:              NewDate(2024, 1, 1),
		Notes:                &notes,
		EstimatedUpsellValue: &upsell,
		Documents:            []string{"a.pdf"},
	}

	assert.True(t, contract.IsActive())
	assert.True(t, contract.HasInvertedPeriod())

	clone := contract.Clone()
	*clone.Notes = "alterado"
	clone.Documents[0] = "b.pdf"
	assert.Equal(t, "cliente satisfeito", *contract.Notes)
	assert.Equal(t, "a.pdf", contract.Documents[0])
	assert.Equal(t, "2025-01-01", ParseDateOrZero("2025-01-01").String())
	assert.True(t, ParseDateOrZero("lixo").IsZero())
}

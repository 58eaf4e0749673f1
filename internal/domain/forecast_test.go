package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
}

func TestForecast_ContractMonthBucketing(t *testing.T) {
	contract := Contract{
		MonthlyValue: 22500,
		Status:       ContractStatusActive,
		StartDate:    NewDate(2024, 1, 15),
		EndDate:      NewDate(2025, 1, 15),
	}

	entries := Forecast([]Contract{contract}, nil, 36, monthStart(2023, 6))
	assert.Len(t, entries, 36)

	for i, entry := range entries {
		month := monthStart(2023, 6).AddDate(0, i, 0)
		// o primeiro dia do mês precisa estar entre início e término
		active := !month.Before(monthStart(2024, 2)) && !month.After(monthStart(2025, 1))

		if active {
			assert.Equal(t, 22500.0, entry.RecurringRevenue, "mês %s deveria contar o contrato", entry.Period)
		} else {
			assert.Equal(t, 0.0, entry.RecurringRevenue, "mês %s não deveria contar o contrato", entry.Period)
		}
		assert.Equal(t, entry.RecurringRevenue, entry.PotentialRevenue)
	}
}

func TestForecast_InclusiveBoundaries(t *testing.T) {
	contract := Contract{
		MonthlyValue: 1000,
		Status:       ContractStatusActive,
		StartDate:    NewDate(2024, 3, 1),
		EndDate:      NewDate(2024, 5, 1),
	}

	entries := Forecast([]Contract{contract}, nil, 5, monthStart(2024, 2))

	got := make([]float64, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.RecurringRevenue)
	}
	assert.Equal(t, []float64{0, 1000, 1000, 1000, 0}, got)
}

func TestForecast_IgnoresInactiveContracts(t *testing.T) {
	contracts := []Contract{
		{MonthlyValue: 1000, Status: ContractStatusPaused, StartDate: NewDate(2024, 1, 1), EndDate: NewDate(2024, 12, 31)},
		{MonthlyValue: 1000, Status: ContractStatusEnded, StartDate: NewDate(2024, 1, 1), EndDate: NewDate(2024, 12, 31)},
		{MonthlyValue: 1000, Status: ContractStatusActive},
	}

	for _, entry := range Forecast(contracts, nil, 12, monthStart(2024, 1)) {
		assert.Equal(t, 0.0, entry.RecurringRevenue)
	}
}

func TestForecast_NegotiationLandsInItsMonth(t *testing.T) {
	negotiation := Negotiation{
		EstimatedValue:     80000,
		ClosingProbability: 70,
		NextActionDate:     NewDate(2024, 10, 5),
	}

	entries := Forecast(nil, []Negotiation{negotiation}, 24, monthStart(2024, 1))

	for _, entry := range entries {
		landing := entry.PotentialRevenue - entry.RecurringRevenue
		if entry.Period == "10-2024" {
			assert.InDelta(t, 56000.0, landing, 1e-9)
		} else {
			assert.Equal(t, 0.0, landing, "mês %s não deveria receber a negociação", entry.Period)
		}
	}
}

func TestForecast_SameMonthOtherYear(t *testing.T) {
	negotiation := Negotiation{EstimatedValue: 1000, ClosingProbability: 100, NextActionDate: NewDate(2023, 10, 5)}

	for _, entry := range Forecast(nil, []Negotiation{negotiation}, 12, monthStart(2024, 1)) {
		assert.Equal(t, 0.0, entry.PotentialRevenue)
	}
}

func TestForecast_PotentialIsCumulativeWithRecurring(t *testing.T) {
	contract := Contract{MonthlyValue: 50000, Status: ContractStatusActive, StartDate: NewDate(2024, 3, 1), EndDate: NewDate(2025, 3, 1)}
	negotiation := Negotiation{EstimatedValue: 80000, ClosingProbability: 70, NextActionDate: NewDate(2024, 10, 5)}

	entries := Forecast([]Contract{contract}, []Negotiation{negotiation}, 1, monthStart(2024, 10))

	assert.Len(t, entries, 1)
	assert.Equal(t, "out/2024", entries[0].Month)
	assert.Equal(t, "10-2024", entries[0].Period)
	assert.Equal(t, 50000.0, entries[0].RecurringRevenue)
	assert.InDelta(t, 106000.0, entries[0].PotentialRevenue, 1e-9)
}

func TestForecast_HorizonAndStart(t *testing.T) {
	entries := Forecast(nil, nil, 24, time.Date(2025, 1, 20, 15, 0, 0, 0, time.Local))

	assert.Len(t, entries, 24)
	assert.Equal(t, "01-2025", entries[0].Period)
	assert.Equal(t, "12-2026", entries[23].Period)
	assert.Equal(t, "dez/2026", entries[23].Month)

	assert.Empty(t, Forecast(nil, nil, 0, monthStart(2025, 1)))
	assert.Empty(t, Forecast(nil, nil, -3, monthStart(2025, 1)))
}

func TestForecast_DoesNotMutateInput(t *testing.T) {
	contracts := []Contract{{ID: "1", MonthlyValue: 10, Status: ContractStatusActive, StartDate: NewDate(2024, 1, 1), EndDate: NewDate(2024, 12, 1)}}
	before := contracts[0].Clone()

	Forecast(contracts, nil, 12, monthStart(2024, 1))

	assert.Equal(t, before, contracts[0])
}

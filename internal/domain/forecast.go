package domain

import (
	"time"

	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

// ForecastEntry é a projeção de receita de um mês
type ForecastEntry struct {
	Month            string  `json:"month"`  // Rótulo curto (ex: jan/2025)
	Period           string  `json:"period"` // Período no formato mm-yyyy
	RecurringRevenue float64 `json:"recurring_revenue"`
	PotentialRevenue float64 `json:"potential_revenue"` // Recorrente + negociações previstas no mês
}

// Forecast projeta mês a mês a receita recorrente e potencial a partir de startMonth.
//
// Um contrato conta no mês quando está ativo e o primeiro dia do mês está entre
// o início e o término (inclusive). Uma negociação entra no mês em que cai a data
// da próxima ação, pelo seu valor ponderado.
func Forecast(contracts []Contract, negotiations []Negotiation, horizonMonths int, startMonth time.Time) []ForecastEntry {
	if horizonMonths <= 0 {
		return []ForecastEntry{}
	}

	first := utils.FirstDayOfMonth(startMonth)
	entries := make([]ForecastEntry, 0, horizonMonths)

	for i := 0; i < horizonMonths; i++ {
		month := time.Date(first.Year(), first.Month()+time.Month(i), 1, 0, 0, 0, 0, time.Local)

		recurring := 0.0
		for _, contract := range contracts {
			if isActiveInMonth(contract, month) {
				recurring += contract.MonthlyValue
			}
		}

		landing := 0.0
		for _, negotiation := range negotiations {
			if landsInMonth(negotiation, month) {
				landing += negotiation.WeightedValue()
			}
		}

		entries = append(entries, ForecastEntry{
			Month:            utils.ShortMonthLabel(month),
			Period:           utils.MonthPeriod(month),
			RecurringRevenue: recurring,
			PotentialRevenue: recurring + landing,
		})
	}

	return entries
}

func isActiveInMonth(contract Contract, monthStart time.Time) bool {
	if !contract.IsActive() || contract.StartDate.IsZero() || contract.EndDate.IsZero() {
		return false
	}
	return !contract.StartDate.After(monthStart) && !contract.EndDate.Before(monthStart)
}

func landsInMonth(negotiation Negotiation, monthStart time.Time) bool {
	if negotiation.NextActionDate.IsZero() {
		return false
	}
	return utils.SameMonth(negotiation.NextActionDate.Time, monthStart)
}

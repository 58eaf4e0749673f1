package domain

import "time"

// MonthlyReport é a fotografia arquivada do painel em um mês
type MonthlyReport struct {
	ID        int               `json:"id"`
	Period    string            `json:"period"` // Período no formato mm-yyyy
	Summary   *DashboardSummary `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// AvailablePeriods representa os períodos mensais com relatório arquivado
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato mm-yyyy
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}

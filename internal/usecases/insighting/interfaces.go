package insighting

import (
	"time"

	"github.com/vfg2006/revenue-planning-api/internal/domain"
)

// DashboardInsighter define a interface para montar o painel principal
type DashboardInsighter interface {
	// GetDashboard calcula os indicadores do painel com a previsão a partir do mês de now
	GetDashboard(now time.Time) *domain.DashboardSummary
}

// ForecastInsighter define a interface para a previsão de receita
type ForecastInsighter interface {
	// GetForecast projeta months meses a partir de start
	GetForecast(months int, start time.Time) []domain.ForecastEntry

	// GetAnnualForecast usa o horizonte e o mês inicial configurados para o plano anual
	GetAnnualForecast() []domain.ForecastEntry
}

// Insighter é a interface completa dos indicadores derivados dos registros
type Insighter interface {
	DashboardInsighter
	ForecastInsighter

	GetVerticalMetrics() []domain.VerticalMetrics
	GetMarketingOverview() *domain.MarketingOverview
	GetTeamOverview() *domain.TeamOverview
	GetContractTotalValue(contractID string) (*domain.ContractValue, error)
	GetNegotiationsByVertical() []domain.NegotiationGroup
}

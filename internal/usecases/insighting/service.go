package insighting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/config"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

// Service calcula os indicadores sempre sobre uma fotografia recente do store
type Service struct {
	cfg   *config.Config
	store repository.RecordRepository
}

// NewService cria uma nova instância do serviço de indicadores
func NewService(cfg *config.Config, store repository.RecordRepository) Insighter {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

func (s *Service) GetDashboard(now time.Time) *domain.DashboardSummary {
	return BuildDashboard(s.store.Snapshot(), s.cfg.Forecast.DashboardMonths, now)
}

// BuildDashboard monta o painel a partir de um dataset já carregado.
// O ROI de marketing usa a receita potencial das negociações como retorno.
func BuildDashboard(dataset domain.Dataset, forecastMonths int, now time.Time) *domain.DashboardSummary {
	currentRevenue := domain.CurrentRevenue(dataset.Contracts)
	potentialRevenue := domain.PotentialRevenue(dataset.Negotiations)
	byVertical := domain.RevenueByVertical(dataset.Contracts)

	share := domain.RevenueShare(byVertical, currentRevenue)
	for vertical, value := range share {
		share[vertical] = utils.RoundWithTwoDecimalPlace(value)
	}

	return &domain.DashboardSummary{
		CurrentRevenue:    currentRevenue,
		PotentialRevenue:  potentialRevenue,
		ActiveStudents:    domain.ActiveStudents(dataset.Contracts),
		RenewalRate:       utils.RoundWithTwoDecimalPlace(domain.RenewalRate(dataset.Contracts)),
		RevenueByVertical: byVertical,
		RevenueShare:      share,
		MarketingCost:     domain.MarketingCost(dataset.MarketingStrategies),
		MarketingROI:      utils.RoundWithTwoDecimalPlace(domain.MarketingROI(dataset.MarketingStrategies, potentialRevenue)),
		TeamCost:          domain.TeamCost(dataset.Team),
		StaffingNeedCost:  domain.StaffingNeedCost(dataset.StaffingNeeds),
		Forecast:          domain.Forecast(dataset.Contracts, dataset.Negotiations, forecastMonths, now),
		GeneratedAt:       now,
	}
}

func (s *Service) GetForecast(months int, start time.Time) []domain.ForecastEntry {
	dataset := s.store.Snapshot()

	logrus.WithFields(logrus.Fields{
		"months": months,
		"start":  utils.MonthPeriod(start),
	}).Debug("Calculando previsão de receita")

	return domain.Forecast(dataset.Contracts, dataset.Negotiations, months, start)
}

func (s *Service) GetAnnualForecast() []domain.ForecastEntry {
	return s.GetForecast(s.cfg.Forecast.AnnualMonths, s.cfg.Forecast.AnnualStartMonth())
}

func (s *Service) GetVerticalMetrics() []domain.VerticalMetrics {
	return domain.MetricsByVertical(s.store.Snapshot())
}

func (s *Service) GetMarketingOverview() *domain.MarketingOverview {
	dataset := s.store.Snapshot()
	averageTicket := s.averageTicket()

	potentialRevenue := domain.PotentialRevenue(dataset.Negotiations)
	strategies := make([]domain.StrategyPerformance, 0, len(dataset.MarketingStrategies))
	for _, strategy := range dataset.MarketingStrategies {
		strategies = append(strategies, domain.StrategyPerformance{
			StrategyID:        strategy.ID,
			Name:              strategy.Name,
			Vertical:          strategy.Vertical,
			Channel:           strategy.Channel,
			MonthlyInvestment: strategy.MonthlyInvestment,
			EstimatedRevenue:  utils.RoundWithTwoDecimalPlace(domain.StrategyEstimatedRevenue(strategy, averageTicket)),
			EstimatedROI:      utils.RoundWithTwoDecimalPlace(domain.StrategyEstimatedROI(strategy, averageTicket)),
			ActiveAutomations: strategy.ActiveAutomations(),
			TotalAutomations:  len(strategy.Automations),
		})
	}

	return &domain.MarketingOverview{
		TotalInvestment:  domain.MarketingCost(dataset.MarketingStrategies),
		PotentialRevenue: potentialRevenue,
		ROI:              utils.RoundWithTwoDecimalPlace(domain.MarketingROI(dataset.MarketingStrategies, potentialRevenue)),
		Strategies:       strategies,
	}
}

func (s *Service) GetTeamOverview() *domain.TeamOverview {
	dataset := s.store.Snapshot()

	plannedHires := 0
	for _, need := range dataset.StaffingNeeds {
		plannedHires += need.Quantity
	}

	return &domain.TeamOverview{
		TeamCost:          domain.TeamCost(dataset.Team),
		StaffingNeedCost:  domain.StaffingNeedCost(dataset.StaffingNeeds),
		Headcount:         len(dataset.Team),
		PlannedHires:      plannedHires,
		MembersByVertical: domain.GroupTeamByVertical(dataset.Team),
	}
}

func (s *Service) GetContractTotalValue(contractID string) (*domain.ContractValue, error) {
	contract, err := s.store.GetContract(contractID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contrato %s: %w", contractID, err)
	}

	return &domain.ContractValue{
		ContractID:   contract.ID,
		MonthlyValue: contract.MonthlyValue,
		Months:       domain.ContractMonths(contract),
		TotalValue:   domain.ContractTotalValue(contract),
	}, nil
}

func (s *Service) GetNegotiationsByVertical() []domain.NegotiationGroup {
	return domain.GroupNegotiationsByVertical(s.store.ListNegotiations())
}

func (s *Service) averageTicket() float64 {
	if s.cfg.Marketing.AverageTicket <= 0 {
		return domain.DefaultAverageTicket
	}
	return s.cfg.Marketing.AverageTicket
}

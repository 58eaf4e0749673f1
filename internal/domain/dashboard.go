package domain

import "time"

// DashboardSummary reúne os números exibidos no painel principal
type DashboardSummary struct {
	CurrentRevenue    float64              `json:"current_revenue"`
	PotentialRevenue  float64              `json:"potential_revenue"`
	ActiveStudents    int                  `json:"active_students"`
	RenewalRate       float64              `json:"renewal_rate"`
	RevenueByVertical map[Vertical]float64 `json:"revenue_by_vertical"`
	RevenueShare      map[Vertical]float64 `json:"revenue_share"`
	MarketingCost     float64              `json:"marketing_cost"`
	MarketingROI      float64              `json:"marketing_roi"`
	TeamCost          float64              `json:"team_cost"`
	StaffingNeedCost  float64              `json:"staffing_need_cost"`
	Forecast          []ForecastEntry      `json:"forecast"`
	GeneratedAt       time.Time            `json:"generated_at"`
}

// StrategyPerformance é a estimativa de retorno de uma estratégia de marketing
type StrategyPerformance struct {
	StrategyID        string           `json:"strategy_id"`
	Name              string           `json:"name"`
	Vertical          Vertical         `json:"vertical"`
	Channel           MarketingChannel `json:"channel"`
	MonthlyInvestment float64          `json:"monthly_investment"`
	EstimatedRevenue  float64          `json:"estimated_revenue"`
	EstimatedROI      float64          `json:"estimated_roi"`
	ActiveAutomations int              `json:"active_automations"`
	TotalAutomations  int              `json:"total_automations"`
}

type MarketingOverview struct {
	TotalInvestment  float64               `json:"total_investment"`
	PotentialRevenue float64               `json:"potential_revenue"`
	ROI              float64               `json:"roi"`
	Strategies       []StrategyPerformance `json:"strategies"`
}

type TeamOverview struct {
	TeamCost          float64       `json:"team_cost"`
	StaffingNeedCost  float64       `json:"staffing_need_cost"`
	Headcount         int           `json:"headcount"`
	PlannedHires      int           `json:"planned_hires"`
	MembersByVertical []PersonGroup `json:"members_by_vertical"`
}

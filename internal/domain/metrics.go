package domain

import "math"

// AverageDaysPerMonth aproxima a duração de um mês na conta do valor total do contrato
const AverageDaysPerMonth = 30.44

// DefaultAverageTicket é o valor médio por cliente usado na estimativa de ROI por estratégia
const DefaultAverageTicket = 15000.0

// CurrentRevenue soma o valor mensal dos contratos ativos
func CurrentRevenue(contracts []Contract) float64 {
	total := 0.0
	for _, contract := range contracts {
		if contract.IsActive() {
			total += contract.MonthlyValue
		}
	}
	return total
}

// RevenueByVertical soma o valor mensal dos contratos ativos por vertical.
// Verticais sem contratos ativos não aparecem no mapa.
func RevenueByVertical(contracts []Contract) map[Vertical]float64 {
	result := make(map[Vertical]float64)
	for _, contract := range contracts {
		if !contract.IsActive() {
			continue
		}
		result[contract.Vertical] += contract.MonthlyValue
	}
	return result
}

// PotentialRevenue é o valor esperado de todas as negociações, em qualquer estágio
func PotentialRevenue(negotiations []Negotiation) float64 {
	total := 0.0
	for _, negotiation := range negotiations {
		total += negotiation.WeightedValue()
	}
	return total
}

// RenewalRate é a média da probabilidade de renovação de todos os contratos
func RenewalRate(contracts []Contract) float64 {
	if len(contracts) == 0 {
		return 0
	}

	sum := 0
	for _, contract := range contracts {
		sum += contract.RenewalProbability
	}
	return float64(sum) / float64(len(contracts))
}

func MarketingCost(strategies []MarketingStrategy) float64 {
	total := 0.0
	for _, strategy := range strategies {
		total += strategy.MonthlyInvestment
	}
	return total
}

func TeamCost(people []Person) float64 {
	total := 0.0
	for _, person := range people {
		total += person.Salary
	}
	return total
}

func StaffingNeedCost(needs []StaffingNeed) float64 {
	total := 0.0
	for _, need := range needs {
		total += need.EstimatedSalary * float64(need.Quantity)
	}
	return total
}

// MarketingROI calcula o retorno percentual do investimento em marketing
// sobre a receita informada pelo chamador
func MarketingROI(strategies []MarketingStrategy, revenue float64) float64 {
	cost := MarketingCost(strategies)
	if cost == 0 {
		return 0
	}
	return ((revenue - cost) / cost) * 100
}

// ContractMonths aproxima a duração do contrato em meses (dias / 30.44, arredondado para cima)
func ContractMonths(contract Contract) float64 {
	if contract.StartDate.IsZero() || contract.EndDate.IsZero() {
		return 0
	}

	days := contract.EndDate.Sub(contract.StartDate.Time).Hours() / 24
	// arredonda antes do ceil para absorver a hora de diferença do horário de verão
	days = math.Round(days)

	return math.Ceil(days / AverageDaysPerMonth)
}

// ContractTotalValue multiplica o valor mensal pelo número aproximado de meses do contrato
func ContractTotalValue(contract Contract) float64 {
	if contract.StartDate.IsZero() || contract.EndDate.IsZero() || contract.MonthlyValue == 0 {
		return 0
	}

	return contract.MonthlyValue * ContractMonths(contract)
}

// ActiveStudents soma os alunos dos contratos ativos
func ActiveStudents(contracts []Contract) int {
	total := 0
	for _, contract := range contracts {
		if contract.IsActive() {
			total += contract.StudentCount
		}
	}
	return total
}

// RevenueShare calcula a participação percentual de cada vertical na receita total
func RevenueShare(byVertical map[Vertical]float64, total float64) map[Vertical]float64 {
	share := make(map[Vertical]float64, len(byVertical))
	for vertical, value := range byVertical {
		if total == 0 {
			share[vertical] = 0
			continue
		}
		share[vertical] = (value / total) * 100
	}
	return share
}

// StrategyEstimatedRevenue estima a receita gerada pela meta de leads de uma estratégia
func StrategyEstimatedRevenue(strategy MarketingStrategy, averageTicket float64) float64 {
	conversions := float64(strategy.LeadTarget) * (strategy.EstimatedConversionRate / 100)
	return conversions * averageTicket
}

// StrategyEstimatedROI é o ROI percentual estimado de uma estratégia isolada
func StrategyEstimatedROI(strategy MarketingStrategy, averageTicket float64) float64 {
	if strategy.MonthlyInvestment == 0 {
		return 0
	}
	estimated := StrategyEstimatedRevenue(strategy, averageTicket)
	return ((estimated - strategy.MonthlyInvestment) / strategy.MonthlyInvestment) * 100
}

// GroupTeamByVertical agrupa a equipe mantendo a ordem de primeira aparição de cada vertical
func GroupTeamByVertical(people []Person) []PersonGroup {
	groups := make([]PersonGroup, 0)
	index := make(map[Vertical]int)

	for _, person := range people {
		i, exists := index[person.Vertical]
		if !exists {
			i = len(groups)
			index[person.Vertical] = i
			groups = append(groups, PersonGroup{Vertical: person.Vertical, Members: []Person{}})
		}
		groups[i].Members = append(groups[i].Members, person)
	}

	return groups
}

// GroupNegotiationsByVertical agrupa as negociações na ordem fixa das verticais, omitindo grupos vazios
func GroupNegotiationsByVertical(negotiations []Negotiation) []NegotiationGroup {
	byVertical := make(map[Vertical][]Negotiation)
	for _, negotiation := range negotiations {
		byVertical[negotiation.Vertical] = append(byVertical[negotiation.Vertical], negotiation)
	}

	groups := make([]NegotiationGroup, 0, len(byVertical))
	for _, vertical := range Verticals {
		if len(byVertical[vertical]) == 0 {
			continue
		}
		groups = append(groups, NegotiationGroup{Vertical: vertical, Negotiations: byVertical[vertical]})
	}

	return groups
}

// MetricsByVertical consolida os números de cada vertical, incluindo as zeradas
func MetricsByVertical(dataset Dataset) []VerticalMetrics {
	metrics := make([]VerticalMetrics, 0, len(Verticals))

	for _, vertical := range Verticals {
		m := VerticalMetrics{Vertical: vertical}

		for _, contract := range dataset.Contracts {
			if contract.Vertical != vertical || !contract.IsActive() {
				continue
			}
			m.CurrentRevenue += contract.MonthlyValue
			m.Contracts++
			m.Students += contract.StudentCount
		}

		for _, negotiation := range dataset.Negotiations {
			if negotiation.Vertical == vertical {
				m.PotentialRevenue += negotiation.WeightedValue()
			}
		}

		for _, strategy := range dataset.MarketingStrategies {
			if strategy.Vertical == vertical {
				m.MarketingInvestment += strategy.MonthlyInvestment
			}
		}

		for _, person := range dataset.Team {
			if person.Vertical == vertical {
				m.TeamCost += person.Salary
			}
		}

		metrics = append(metrics, m)
	}

	return metrics
}

// VerticalMetrics resume os números de uma vertical
type VerticalMetrics struct {
	Vertical            Vertical `json:"vertical"`
	CurrentRevenue      float64  `json:"current_revenue"`
	PotentialRevenue    float64  `json:"potential_revenue"`
	Contracts           int      `json:"contracts"`
	Students            int      `json:"students"`
	MarketingInvestment float64  `json:"marketing_investment"`
	TeamCost            float64  `json:"team_cost"`
}

// ContractValue é a resposta do cálculo de valor total de um contrato
type ContractValue struct {
	ContractID   string  `json:"contract_id"`
	MonthlyValue float64 `json:"monthly_value"`
	Months       float64 `json:"months"`
	TotalValue   float64 `json:"total_value"`
}

package domain

// Dataset é uma fotografia somente leitura das cinco coleções de registros
type Dataset struct {
	Contracts           []Contract          `json:"contracts"`
	Negotiations        []Negotiation       `json:"negotiations"`
	MarketingStrategies []MarketingStrategy `json:"marketing_strategies"`
	Team                []Person            `json:"team"`
	StaffingNeeds       []StaffingNeed      `json:"staffing_needs"`
}

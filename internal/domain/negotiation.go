package domain

type NegotiationStage string

const (
	NegotiationStageProspecting NegotiationStage = "prospecting"
	NegotiationStageProposal    NegotiationStage = "proposal"
	NegotiationStageNegotiation NegotiationStage = "negotiation"
	NegotiationStageClosing     NegotiationStage = "closing"
)

type Negotiation struct {
	ID                 string           `json:"id"`
	Vertical           Vertical         `json:"vertical" validate:"required,oneof=B2B B2B2C B2G B2S Franchise"`
	Company            string           `json:"company" validate:"required"`
	EstimatedStudents  int              `json:"estimated_students"`
	EstimatedValue     float64          `json:"estimated_value"`
	ClosingProbability int              `json:"closing_probability"`
	InitialContactDate Date             `json:"initial_contact_date"`
	NextAction         string           `json:"next_action"`
	NextActionDate     Date             `json:"next_action_date"`
	Stage              NegotiationStage `json:"stage" validate:"required,oneof=prospecting proposal negotiation closing"`
	Notes              *string          `json:"notes,omitempty"`
	Documents          []string         `json:"documents,omitempty"`
	Links              []string         `json:"links,omitempty"`
}

// WeightedValue é o valor esperado da negociação ponderado pela probabilidade de fechamento
func (n Negotiation) WeightedValue() float64 {
	return n.EstimatedValue * (float64(n.ClosingProbability) / 100)
}

func (n Negotiation) Clone() Negotiation {
	clone := n
	if n.Notes != nil {
		notes := *n.Notes
		clone.Notes = &notes
	}
	clone.Documents = cloneStrings(n.Documents)
	clone.Links = cloneStrings(n.Links)
	return clone
}

// NegotiationGroup agrupa negociações de uma mesma vertical
type NegotiationGroup struct {
	Vertical     Vertical      `json:"vertical"`
	Negotiations []Negotiation `json:"negotiations"`
}

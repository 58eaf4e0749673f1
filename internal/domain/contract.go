package domain

type ContractStatus string

const (
	ContractStatusActive ContractStatus = "active"
	ContractStatusPaused ContractStatus = "paused"
	ContractStatusEnded  ContractStatus = "ended"
)

type Contract struct {
	ID                   string         `json:"id"`
	Vertical             Vertical       `json:"vertical" validate:"required,oneof=B2B B2B2C B2G B2S Franchise"`
	Company              string         `json:"company" validate:"required"`
	StudentCount         int            `json:"student_count"`
	MonthlyValue         float64        `json:"monthly_value"`
	StartDate            Date           `json:"start_date"`
	EndDate              Date           `json:"end_date"`
	Status               ContractStatus `json:"status" validate:"required,oneof=active paused ended"`
	RenewalProbability   int            `json:"renewal_probability"`
	UpsellPossible       bool           `json:"upsell_possible"`
	EstimatedUpsellValue *float64       `json:"estimated_upsell_value,omitempty"`
	Notes                *string        `json:"notes,omitempty"`
	Documents            []string       `json:"documents,omitempty"`
	Links                []string       `json:"links,omitempty"`
}

func (c Contract) IsActive() bool {
	return c.Status == ContractStatusActive
}

// HasInvertedPeriod indica um término anterior ao início (aceito, mas gera totais negativos)
func (c Contract) HasInvertedPeriod() bool {
	return !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate.Time)
}

// Clone copia o contrato sem compartilhar ponteiros ou slices
func (c Contract) Clone() Contract {
	clone := c
	if c.EstimatedUpsellValue != nil {
		value := *c.EstimatedUpsellValue
		clone.EstimatedUpsellValue = &value
	}
	if c.Notes != nil {
		notes := *c.Notes
		clone.Notes = &notes
	}
	clone.Documents = cloneStrings(c.Documents)
	clone.Links = cloneStrings(c.Links)
	return clone
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

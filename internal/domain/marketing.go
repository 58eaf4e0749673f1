package domain

type MarketingChannel string

const (
	MarketingChannelGoogleAds MarketingChannel = "google_ads"
	MarketingChannelFacebook  MarketingChannel = "facebook"
	MarketingChannelLinkedIn  MarketingChannel = "linkedin"
	MarketingChannelEmail     MarketingChannel = "email"
	MarketingChannelEvents    MarketingChannel = "events"
	MarketingChannelOther     MarketingChannel = "other"
)

type AutomationType string

const (
	AutomationTypeEmail    AutomationType = "email"
	AutomationTypeWhatsApp AutomationType = "whatsapp"
	AutomationTypeCRM      AutomationType = "crm"
	AutomationTypeOther    AutomationType = "other"
)

// Automation pertence a uma estratégia e só existe dentro dela
type Automation struct {
	ID      string         `json:"id"`
	Name    string         `json:"name" validate:"required"`
	Type    AutomationType `json:"type" validate:"required,oneof=email whatsapp crm other"`
	Trigger string         `json:"trigger"`
	Active  bool           `json:"active"`
}

type MarketingStrategy struct {
	ID                      string           `json:"id"`
	Vertical                Vertical         `json:"vertical" validate:"required,oneof=B2B B2B2C B2G B2S Franchise"`
	Name                    string           `json:"name" validate:"required"`
	MonthlyInvestment       float64          `json:"monthly_investment"`
	Channel                 MarketingChannel `json:"channel" validate:"required,oneof=google_ads facebook linkedin email events other"`
	Automations             []Automation     `json:"automations" validate:"dive"`
	LeadTarget              int              `json:"lead_target"`
	EstimatedConversionRate float64          `json:"estimated_conversion_rate"`
}

func (s MarketingStrategy) Clone() MarketingStrategy {
	clone := s
	if s.Automations != nil {
		clone.Automations = make([]Automation, len(s.Automations))
		copy(clone.Automations, s.Automations)
	}
	return clone
}

func (s MarketingStrategy) ActiveAutomations() int {
	active := 0
	for _, automation := range s.Automations {
		if automation.Active {
			active++
		}
	}
	return active
}

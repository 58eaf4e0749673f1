package repository

import "github.com/vfg2006/revenue-planning-api/internal/domain"

// DemoDataset é o conjunto de dados inicial usado quando SEED_DEMO_DATA=true
func DemoDataset() domain.Dataset {
	upsell := 5000.0
	contractNotes := "Cliente satisfeito, interessado em expandir para mais departamentos"
	tenderNotes := "Contrato via licitação"
	negotiationNotes := "Decisão esperada até final de outubro"

	return domain.Dataset{
		Contracts: []domain.Contract{
			{
				ID:                   "1",
				Vertical:             domain.VerticalB2B,
				Company:              "Tech Corp",
				StudentCount:         150,
				MonthlyValue:         22500,
				StartDate:            domain.NewDate(2024, 1, 15),
				EndDate:              domain.NewDate(2025, 1, 15),
				Status:               domain.ContractStatusActive,
				RenewalProbability:   85,
				UpsellPossible:       true,
				EstimatedUpsellValue: &upsell,
				Notes:                &contractNotes,
			},
			{
				ID:                 "2",
				Vertical:           domain.VerticalB2G,
				Company:            "Prefeitura Municipal",
				StudentCount:       500,
				MonthlyValue:       50000,
				StartDate:          domain.NewDate(2024, 3, 1),
				EndDate:            domain.NewDate(2025, 3, 1),
				Status:             domain.ContractStatusActive,
				RenewalProbability: 90,
				Notes:              &tenderNotes,
			},
		},
		Negotiations: []domain.Negotiation{
			{
				ID:                 "1",
				Vertical:           domain.VerticalB2B2C,
				Company:            "Universidade XYZ",
				EstimatedStudents:  1000,
				EstimatedValue:     80000,
				ClosingProbability: 70,
				InitialContactDate: domain.NewDate(2024, 8, 1),
				NextAction:         "Apresentação final para reitoria",
				NextActionDate:     domain.NewDate(2024, 10, 5),
				Stage:              domain.NegotiationStageNegotiation,
				Notes:              &negotiationNotes,
			},
		},
		MarketingStrategies: []domain.MarketingStrategy{
			{
				ID:                "1",
				Vertical:          domain.VerticalB2B,
				Name:              "Campanha LinkedIn B2B",
				MonthlyInvestment: 5000,
				Channel:           domain.MarketingChannelLinkedIn,
				Automations: []domain.Automation{
					{
						ID:      "1",
						Name:    "Follow-up automático",
						Type:    domain.AutomationTypeEmail,
						Trigger: "Download de material",
						Active:  true,
					},
				},
				LeadTarget:              100,
				EstimatedConversionRate: 3,
			},
		},
		Team: []domain.Person{
			{
				ID:             "1",
				Name:           "Ana Silva",
				Role:           "Gerente de Vendas B2B",
				Vertical:       domain.VerticalB2B,
				Salary:         8000,
				EmploymentType: domain.EmploymentTypeSalaried,
				HireDate:       domain.NewDate(2023, 6, 15),
			},
			{
				ID:             "2",
				Name:           "Carlos Santos",
				Role:           "Analista de Marketing",
				Vertical:       domain.VerticalAll,
				Salary:         4500,
				EmploymentType: domain.EmploymentTypeSalaried,
				HireDate:       domain.NewDate(2024, 1, 10),
			},
		},
		StaffingNeeds: []domain.StaffingNeed{
			{
				ID:              "1",
				Role:            "Consultor de Franquias",
				Vertical:        domain.VerticalFranchise,
				Quantity:        2,
				EstimatedSalary: 6000,
				Priority:        domain.StaffingPriorityHigh,
				Justification:   "Lançamento do modelo de franquias previsto para este ano",
			},
		},
	}
}

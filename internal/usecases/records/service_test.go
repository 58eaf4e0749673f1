package records

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
)

func validContract() domain.Contract {
	return domain.Contract{
		Vertical:           domain.VerticalB2B,
		Company:            "Tech Corp",
		StudentCount:       150,
		MonthlyValue:       22500,
		StartDate:          domain.NewDate(2024, 1, 15),
		EndDate:            domain.NewDate(2025, 1, 15),
		Status:             domain.ContractStatusActive,
		RenewalProbability: 85,
	}
}

func newService() (RecordService, *repository.RecordStore) {
	store := repository.NewRecordStore()
	return NewService(store), store
}

func TestService_AddContract(t *testing.T) {
	service, store := newService()

	stored, err := service.AddContract(validContract())

	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Len(t, store.ListContracts(), 1)
}

func TestService_AddContract_Validation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *domain.Contract)
		wantCode   string
		wantFields []FieldError
	}{
		{
			name:       "empresa ausente",
			mutate:     func(c *domain.Contract) { c.Company = "" },
			wantCode:   apiErrors.ErrMissingRequiredData,
			wantFields: []FieldError{{Field: "company", Rule: "required"}},
		},
		{
			name:       "vertical desconhecida",
			mutate:     func(c *domain.Contract) { c.Vertical = "B2X" },
			wantCode:   apiErrors.ErrInvalidFormat,
			wantFields: []FieldError{{Field: "vertical", Rule: "oneof"}},
		},
		{
			name:       "vertical all não vale para contratos",
			mutate:     func(c *domain.Contract) { c.Vertical = domain.VerticalAll },
			wantCode:   apiErrors.ErrInvalidFormat,
			wantFields: []FieldError{{Field: "vertical", Rule: "oneof"}},
		},
		{
			name:       "status ausente",
			mutate:     func(c *domain.Contract) { c.Status = "" },
			wantCode:   apiErrors.ErrMissingRequiredData,
			wantFields: []FieldError{{Field: "status", Rule: "required"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newService()
			contract := validContract()
			tt.mutate(&contract)

			_, err := service.AddContract(contract)

			var recordErr *RecordError
			require.True(t, errors.As(err, &recordErr))
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.Equal(t, tt.wantCode, recordErr.Code)
			assert.Equal(t, tt.wantFields, recordErr.Fields)
			assert.Empty(t, store.ListContracts())
		})
	}
}

func TestService_AddContract_InvertedPeriodIsAccepted(t *testing.T) {
	service, _ := newService()
	contract := validContract()
	contract.StartDate, contract.EndDate = contract.EndDate, contract.StartDate

	stored, err := service.AddContract(contract)

	require.NoError(t, err)
	assert.True(t, stored.HasInvertedPeriod())
}

func TestService_UpdateContract(t *testing.T) {
	service, _ := newService()
	stored, err := service.AddContract(validContract())
	require.NoError(t, err)

	changed := validContract()
	changed.Status = domain.ContractStatusPaused

	updated, err := service.UpdateContract(stored.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, domain.ContractStatusPaused, service.ListContracts()[0].Status)
}

func TestService_UnknownID(t *testing.T) {
	service, _ := newService()

	assertNotFound := func(t *testing.T, err error, recordType string) {
		var recordErr *RecordError
		require.True(t, errors.As(err, &recordErr))
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.Equal(t, apiErrors.ErrRecordNotFound, recordErr.Code)
		assert.Equal(t, recordType, recordErr.RecordType)
		assert.Equal(t, "nao-existe", recordErr.RecordID)
	}

	_, err := service.UpdateContract("nao-existe", validContract())
	assertNotFound(t, err, RecordTypeContract)

	_, err = service.UpdateNegotiation("nao-existe", domain.Negotiation{
		Vertical: domain.VerticalB2G, Company: "X", Stage: domain.NegotiationStageProposal,
	})
	assertNotFound(t, err, RecordTypeNegotiation)

	assertNotFound(t, service.DeleteMarketingStrategy("nao-existe"), RecordTypeStrategy)
	assertNotFound(t, service.DeleteStaffingNeed("nao-existe"), RecordTypeStaffingNeed)
}

func TestService_UpdateRequiresID(t *testing.T) {
	service, _ := newService()

	_, err := service.UpdatePerson("", domain.Person{})

	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestService_MarketingStrategyAutomations(t *testing.T) {
	service, _ := newService()

	strategy := domain.MarketingStrategy{
		Vertical:          domain.VerticalB2B,
		Name:              "Campanha LinkedIn B2B",
		MonthlyInvestment: 5000,
		Channel:           domain.MarketingChannelLinkedIn,
		Automations: []domain.Automation{
			{Name: "Follow-up automático", Type: domain.AutomationTypeEmail, Active: true},
		},
	}

	stored, err := service.AddMarketingStrategy(strategy)
	require.NoError(t, err)
	require.Len(t, stored.Automations, 1)
	assert.NotEmpty(t, stored.Automations[0].ID)

	stored.Automations = append(stored.Automations, domain.Automation{Name: "WhatsApp", Type: domain.AutomationTypeWhatsApp})
	updated, err := service.UpdateMarketingStrategy(stored.ID, stored)
	require.NoError(t, err)
	require.Len(t, updated.Automations, 2)
	assert.Equal(t, stored.Automations[0].ID, updated.Automations[0].ID)
	assert.NotEmpty(t, updated.Automations[1].ID)

	require.NoError(t, service.DeleteMarketingStrategy(stored.ID))
	assert.Empty(t, service.ListMarketingStrategies())
}

func TestService_MarketingStrategy_InvalidAutomation(t *testing.T) {
	service, _ := newService()

	_, err := service.AddMarketingStrategy(domain.MarketingStrategy{
		Vertical:    domain.VerticalB2B,
		Name:        "Eventos",
		Channel:     domain.MarketingChannelEvents,
		Automations: []domain.Automation{{Type: domain.AutomationTypeCRM}},
	})

	var recordErr *RecordError
	require.True(t, errors.As(err, &recordErr))
	assert.Equal(t, []FieldError{{Field: "automations[0].name", Rule: "required"}}, recordErr.Fields)
}

func TestService_TeamAndStaffingNeeds(t *testing.T) {
	service, _ := newService()

	person, err := service.AddPerson(domain.Person{
		Name: "Carlos Santos", Role: "Analista de Marketing", Vertical: domain.VerticalAll,
		Salary: 4500, EmploymentType: domain.EmploymentTypeSalaried,
	})
	require.NoError(t, err)

	person.Salary = 5000
	_, err = service.UpdatePerson(person.ID, person)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, service.ListTeam()[0].Salary)

	need, err := service.AddStaffingNeed(domain.StaffingNeed{
		Role: "Consultor de Franquias", Vertical: domain.VerticalFranchise, Quantity: 2,
		EstimatedSalary: 6000, Priority: domain.StaffingPriorityHigh,
	})
	require.NoError(t, err)

	_, err = service.AddStaffingNeed(domain.StaffingNeed{
		Role: "Dev", Vertical: domain.VerticalAll, Priority: domain.StaffingPriorityLow,
	})
	assert.ErrorIs(t, err, ErrInvalidRecord, "quantidade zero não é aceita")

	require.NoError(t, service.DeleteStaffingNeed(need.ID))
	assert.Empty(t, service.ListStaffingNeeds())
}

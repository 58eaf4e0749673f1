package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
)

func newTestStore() *RecordStore {
	store := NewRecordStore()
	counter := 0
	store.newID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	return store
}

func TestRecordStore_AddAssignsIDs(t *testing.T) {
	store := newTestStore()

	first := store.AddContract(domain.Contract{ID: "ignorado", Company: "Tech Corp"})
	second := store.AddContract(domain.Contract{Company: "Prefeitura"})

	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "id-2", second.ID)

	contracts := store.ListContracts()
	require.Len(t, contracts, 2)
	assert.Equal(t, "Tech Corp", contracts[0].Company)
	assert.Equal(t, "Prefeitura", contracts[1].Company)
}

func TestRecordStore_DefaultIDsAreUnique(t *testing.T) {
	store := NewRecordStore()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		need := store.AddStaffingNeed(domain.StaffingNeed{Role: "Dev", Quantity: 1})
		assert.False(t, seen[need.ID], "id repetido: %s", need.ID)
		seen[need.ID] = true
	}
}

func TestRecordStore_UpdateKeepsPosition(t *testing.T) {
	store := newTestStore()
	store.AddNegotiation(domain.Negotiation{Company: "A"})
	second := store.AddNegotiation(domain.Negotiation{Company: "B"})
	store.AddNegotiation(domain.Negotiation{Company: "C"})

	second.Company = "B atualizada"
	require.NoError(t, store.UpdateNegotiation(second))

	negotiations := store.ListNegotiations()
	assert.Equal(t, []string{"A", "B atualizada", "C"}, []string{negotiations[0].Company, negotiations[1].Company, negotiations[2].Company})
}

func TestRecordStore_UnknownIDLeavesStateUntouched(t *testing.T) {
	store := newTestStore()
	store.AddContract(domain.Contract{Company: "A"})
	store.AddMarketingStrategy(domain.MarketingStrategy{Name: "LinkedIn"})
	store.AddStaffingNeed(domain.StaffingNeed{Role: "Dev"})
	store.AddPerson(domain.Person{Name: "Ana"})
	before := store.Snapshot()

	assert.ErrorIs(t, store.UpdateContract(domain.Contract{ID: "nao-existe"}), ErrRecordNotFound)
	assert.ErrorIs(t, store.UpdateNegotiation(domain.Negotiation{ID: "nao-existe"}), ErrRecordNotFound)
	assert.ErrorIs(t, store.UpdateMarketingStrategy(domain.MarketingStrategy{ID: "nao-existe"}), ErrRecordNotFound)
	assert.ErrorIs(t, store.UpdatePerson(domain.Person{ID: "nao-existe"}), ErrRecordNotFound)
	assert.ErrorIs(t, store.DeleteMarketingStrategy("nao-existe"), ErrRecordNotFound)
	assert.ErrorIs(t, store.DeleteStaffingNeed("nao-existe"), ErrRecordNotFound)

	_, err := store.GetContract("nao-existe")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.Equal(t, before, store.Snapshot())
}

func TestRecordStore_DeleteStrategyRemovesAutomations(t *testing.T) {
	store := newTestStore()
	strategy := store.AddMarketingStrategy(domain.MarketingStrategy{
		Name:        "LinkedIn",
		Automations: []domain.Automation{{Name: "Follow-up", Type: domain.AutomationTypeEmail}},
	})
	keep := store.AddMarketingStrategy(domain.MarketingStrategy{Name: "Eventos"})

	require.Len(t, strategy.Automations, 1)
	assert.NotEmpty(t, strategy.Automations[0].ID)

	require.NoError(t, store.DeleteMarketingStrategy(strategy.ID))

	strategies := store.ListMarketingStrategies()
	require.Len(t, strategies, 1)
	assert.Equal(t, keep.ID, strategies[0].ID)
}

func TestRecordStore_AutomationIDs(t *testing.T) {
	store := newTestStore()
	strategy := store.AddMarketingStrategy(domain.MarketingStrategy{
		Name: "LinkedIn",
		Automations: []domain.Automation{
			{Name: "Follow-up", Type: domain.AutomationTypeEmail},
			{ID: "fixo", Name: "CRM", Type: domain.AutomationTypeCRM},
		},
	})

	require.Len(t, strategy.Automations, 2)
	generated := strategy.Automations[0].ID
	assert.Len(t, generated, 10)
	assert.Equal(t, "fixo", strategy.Automations[1].ID)

	strategy.Automations = append(strategy.Automations, domain.Automation{Name: "WhatsApp", Type: domain.AutomationTypeWhatsApp})
	require.NoError(t, store.UpdateMarketingStrategy(strategy))

	updated := store.ListMarketingStrategies()[0]
	require.Len(t, updated.Automations, 3)
	assert.Equal(t, generated, updated.Automations[0].ID)
	assert.NotEmpty(t, updated.Automations[2].ID)
	assert.NotEqual(t, generated, updated.Automations[2].ID)
}

func TestRecordStore_DeleteStaffingNeed(t *testing.T) {
	store := newTestStore()
	first := store.AddStaffingNeed(domain.StaffingNeed{Role: "Dev"})
	store.AddStaffingNeed(domain.StaffingNeed{Role: "Designer"})

	before := store.Snapshot()
	require.NoError(t, store.DeleteStaffingNeed(first.ID))

	needs := store.ListStaffingNeeds()
	require.Len(t, needs, 1)
	assert.Equal(t, "Designer", needs[0].Role)
	assert.Len(t, before.StaffingNeeds, 2, "snapshot anterior não deve ser alterado")
}

func TestRecordStore_SnapshotIsIsolated(t *testing.T) {
	store := newTestStore()
	notes := "original"
	store.AddContract(domain.Contract{Company: "A", Notes: &notes, Documents: []string{"a.pdf"}})

	snapshot := store.Snapshot()
	snapshot.Contracts[0].Company = "alterado"
	*snapshot.Contracts[0].Notes = "alterado"
	snapshot.Contracts[0].Documents[0] = "b.pdf"

	contract := store.ListContracts()[0]
	assert.Equal(t, "A", contract.Company)
	assert.Equal(t, "original", *contract.Notes)
	assert.Equal(t, "a.pdf", contract.Documents[0])
}

func TestRecordStore_SeedDemoDataset(t *testing.T) {
	store := newTestStore()
	store.AddContract(domain.Contract{Company: "descartado"})

	store.Seed(DemoDataset())

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.Contracts, 2)
	assert.Len(t, snapshot.Negotiations, 1)
	assert.Len(t, snapshot.MarketingStrategies, 1)
	assert.Len(t, snapshot.Team, 2)
	assert.Len(t, snapshot.StaffingNeeds, 1)
	assert.Equal(t, "1", snapshot.Contracts[0].ID)
	assert.Equal(t, 72500.0, domain.CurrentRevenue(snapshot.Contracts))

	store.Seed(domain.Dataset{Team: []domain.Person{{Name: "Sem id"}}})
	assert.Equal(t, "id-2", store.ListTeam()[0].ID)
	assert.Empty(t, store.ListContracts())
}

func TestRecordStore_ConcurrentAccess(t *testing.T) {
	store := NewRecordStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.AddContract(domain.Contract{Status: domain.ContractStatusActive, MonthlyValue: 10})
		}()
		go func() {
			defer wg.Done()
			_ = domain.CurrentRevenue(store.Snapshot().Contracts)
		}()
	}
	wg.Wait()

	assert.Equal(t, 200.0, domain.CurrentRevenue(store.ListContracts()))
}

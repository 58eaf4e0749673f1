package repository

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

// ErrRecordNotFound é retornado por update/delete quando o id não existe na coleção
var ErrRecordNotFound = errors.New("registro não encontrado")

type RecordRepository interface {
	ListContracts() []domain.Contract
	GetContract(id string) (domain.Contract, error)
	AddContract(contract domain.Contract) domain.Contract
	UpdateContract(contract domain.Contract) error

	ListNegotiations() []domain.Negotiation
	AddNegotiation(negotiation domain.Negotiation) domain.Negotiation
	UpdateNegotiation(negotiation domain.Negotiation) error

	ListMarketingStrategies() []domain.MarketingStrategy
	AddMarketingStrategy(strategy domain.MarketingStrategy) domain.MarketingStrategy
	UpdateMarketingStrategy(strategy domain.MarketingStrategy) error
	DeleteMarketingStrategy(id string) error

	ListTeam() []domain.Person
	AddPerson(person domain.Person) domain.Person
	UpdatePerson(person domain.Person) error

	ListStaffingNeeds() []domain.StaffingNeed
	AddStaffingNeed(need domain.StaffingNeed) domain.StaffingNeed
	DeleteStaffingNeed(id string) error

	Snapshot() domain.Dataset
	Seed(dataset domain.Dataset)
}

// RecordStore mantém as cinco coleções em memória, na ordem de inserção
type RecordStore struct {
	mu sync.RWMutex

	contracts    []domain.Contract
	negotiations []domain.Negotiation
	strategies   []domain.MarketingStrategy
	team         []domain.Person
	needs        []domain.StaffingNeed

	newID func() string
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		contracts:    []domain.Contract{},
		negotiations: []domain.Negotiation{},
		strategies:   []domain.MarketingStrategy{},
		team:         []domain.Person{},
		needs:        []domain.StaffingNeed{},
		newID:        utils.GenerateRecordID,
	}
}

func (s *RecordStore) ListContracts() []domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.contracts, domain.Contract.Clone)
}

func (s *RecordStore) GetContract(id string) (domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.contracts, id, func(c domain.Contract) string { return c.ID })
	if i < 0 {
		return domain.Contract{}, ErrRecordNotFound
	}
	return s.contracts[i].Clone(), nil
}

func (s *RecordStore) AddContract(contract domain.Contract) domain.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := contract.Clone()
	stored.ID = s.newID()
	s.contracts = append(s.contracts, stored)

	return stored.Clone()
}

func (s *RecordStore) UpdateContract(contract domain.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.contracts, contract.Clone(), func(c domain.Contract) string { return c.ID })
}

func (s *RecordStore) ListNegotiations() []domain.Negotiation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.negotiations, domain.Negotiation.Clone)
}

func (s *RecordStore) AddNegotiation(negotiation domain.Negotiation) domain.Negotiation {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := negotiation.Clone()
	stored.ID = s.newID()
	s.negotiations = append(s.negotiations, stored)

	return stored.Clone()
}

func (s *RecordStore) UpdateNegotiation(negotiation domain.Negotiation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.negotiations, negotiation.Clone(), func(n domain.Negotiation) string { return n.ID })
}

func (s *RecordStore) ListMarketingStrategies() []domain.MarketingStrategy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.strategies, domain.MarketingStrategy.Clone)
}

func (s *RecordStore) AddMarketingStrategy(strategy domain.MarketingStrategy) domain.MarketingStrategy {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := withAutomationIDs(strategy.Clone())
	stored.ID = s.newID()
	s.strategies = append(s.strategies, stored)

	return stored.Clone()
}

func (s *RecordStore) UpdateMarketingStrategy(strategy domain.MarketingStrategy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.strategies, withAutomationIDs(strategy.Clone()), func(m domain.MarketingStrategy) string { return m.ID })
}

// DeleteMarketingStrategy remove a estratégia junto com suas automações
func (s *RecordStore) DeleteMarketingStrategy(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, err := remove(s.strategies, id, func(m domain.MarketingStrategy) string { return m.ID })
	if err != nil {
		return err
	}
	s.strategies = remaining
	return nil
}

func (s *RecordStore) ListTeam() []domain.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.team, identity[domain.Person])
}

func (s *RecordStore) AddPerson(person domain.Person) domain.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	person.ID = s.newID()
	s.team = append(s.team, person)

	return person
}

func (s *RecordStore) UpdatePerson(person domain.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.team, person, func(p domain.Person) string { return p.ID })
}

func (s *RecordStore) ListStaffingNeeds() []domain.StaffingNeed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.needs, identity[domain.StaffingNeed])
}

func (s *RecordStore) AddStaffingNeed(need domain.StaffingNeed) domain.StaffingNeed {
	s.mu.Lock()
	defer s.mu.Unlock()

	need.ID = s.newID()
	s.needs = append(s.needs, need)

	return need
}

func (s *RecordStore) DeleteStaffingNeed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, err := remove(s.needs, id, func(n domain.StaffingNeed) string { return n.ID })
	if err != nil {
		return err
	}
	s.needs = remaining
	return nil
}

// Snapshot copia as cinco coleções para leitura pelos cálculos
func (s *RecordStore) Snapshot() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Dataset{
		Contracts:           cloneAll(s.contracts, domain.Contract.Clone),
		Negotiations:        cloneAll(s.negotiations, domain.Negotiation.Clone),
		MarketingStrategies: cloneAll(s.strategies, domain.MarketingStrategy.Clone),
		Team:                cloneAll(s.team, identity[domain.Person]),
		StaffingNeeds:       cloneAll(s.needs, identity[domain.StaffingNeed]),
	}
}

// Seed substitui o conteúdo do store pelo dataset informado.
// Registros sem id recebem um novo.
func (s *RecordStore) Seed(dataset domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contracts = cloneAll(dataset.Contracts, func(c domain.Contract) domain.Contract {
		c = c.Clone()
		c.ID = s.idOrNew(c.ID)
		return c
	})
	s.negotiations = cloneAll(dataset.Negotiations, func(n domain.Negotiation) domain.Negotiation {
		n = n.Clone()
		n.ID = s.idOrNew(n.ID)
		return n
	})
	s.strategies = cloneAll(dataset.MarketingStrategies, func(m domain.MarketingStrategy) domain.MarketingStrategy {
		m = withAutomationIDs(m.Clone())
		m.ID = s.idOrNew(m.ID)
		return m
	})
	s.team = cloneAll(dataset.Team, func(p domain.Person) domain.Person {
		p.ID = s.idOrNew(p.ID)
		return p
	})
	s.needs = cloneAll(dataset.StaffingNeeds, func(n domain.StaffingNeed) domain.StaffingNeed {
		n.ID = s.idOrNew(n.ID)
		return n
	})
}

func (s *RecordStore) idOrNew(id string) string {
	if id != "" {
		return id
	}
	return s.newID()
}

func withAutomationIDs(strategy domain.MarketingStrategy) domain.MarketingStrategy {
	for i := range strategy.Automations {
		if strategy.Automations[i].ID != "" {
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Warn("Falha ao gerar nanoid da automação, usando uuid")
			id = utils.GenerateRecordID()
		}
		strategy.Automations[i].ID = id
	}
	return strategy
}

func identity[T any](item T) T {
	return item
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, clone(item))
	}
	return out
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func replace[T any](items []T, item T, idOf func(T) string) error {
	i := indexOf(items, idOf(item), idOf)
	if i < 0 {
		return ErrRecordNotFound
	}
	items[i] = item
	return nil
}

func remove[T any](items []T, id string, idOf func(T) string) ([]T, error) {
	i := indexOf(items, id, idOf)
	if i < 0 {
		return items, ErrRecordNotFound
	}
	return append(items[:i:i], items[i+1:]...), nil
}

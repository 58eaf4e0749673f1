// Package records orquestra o CRUD das cinco coleções de registros
package records

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
)

const (
	RecordTypeContract     = "contract"
	RecordTypeNegotiation  = "negotiation"
	RecordTypeStrategy     = "marketing_strategy"
	RecordTypePerson       = "team_member"
	RecordTypeStaffingNeed = "staffing_need"
)

type RecordService interface {
	ListContracts() []domain.Contract
	AddContract(contract domain.Contract) (domain.Contract, error)
	UpdateContract(id string, contract domain.Contract) (domain.Contract, error)

	ListNegotiations() []domain.Negotiation
	AddNegotiation(negotiation domain.Negotiation) (domain.Negotiation, error)
	UpdateNegotiation(id string, negotiation domain.Negotiation) (domain.Negotiation, error)

	ListMarketingStrategies() []domain.MarketingStrategy
	AddMarketingStrategy(strategy domain.MarketingStrategy) (domain.MarketingStrategy, error)
	UpdateMarketingStrategy(id string, strategy domain.MarketingStrategy) (domain.MarketingStrategy, error)
	DeleteMarketingStrategy(id string) error

	ListTeam() []domain.Person
	AddPerson(person domain.Person) (domain.Person, error)
	UpdatePerson(id string, person domain.Person) (domain.Person, error)

	ListStaffingNeeds() []domain.StaffingNeed
	AddStaffingNeed(need domain.StaffingNeed) (domain.StaffingNeed, error)
	DeleteStaffingNeed(id string) error
}

type Service struct {
	store    repository.RecordRepository
	validate *validator.Validate
}

func NewService(store repository.RecordRepository) RecordService {
	return &Service{
		store:    store,
		validate: newValidator(),
	}
}

func (s *Service) ListContracts() []domain.Contract {
	return s.store.ListContracts()
}

func (s *Service) AddContract(contract domain.Contract) (domain.Contract, error) {
	if err := s.validateRecord(RecordTypeContract, contract); err != nil {
		return domain.Contract{}, err
	}

	stored := s.store.AddContract(contract)
	warnInvertedPeriod(stored)

	logrus.WithFields(logrus.Fields{
		"record_type": RecordTypeContract,
		"record_id":   stored.ID,
	}).Info("Contrato adicionado")

	return stored, nil
}

func (s *Service) UpdateContract(id string, contract domain.Contract) (domain.Contract, error) {
	if id == "" {
		return domain.Contract{}, NewRecordError(ErrIDRequired, apiErrors.ErrMissingRequiredData, RecordTypeContract)
	}
	contract.ID = id

	if err := s.validateRecord(RecordTypeContract, contract); err != nil {
		return domain.Contract{}, err
	}

	if err := s.store.UpdateContract(contract); err != nil {
		return domain.Contract{}, storeError(err, RecordTypeContract, id)
	}
	warnInvertedPeriod(contract)

	return contract, nil
}

func (s *Service) ListNegotiations() []domain.Negotiation {
	return s.store.ListNegotiations()
}

func (s *Service) AddNegotiation(negotiation domain.Negotiation) (domain.Negotiation, error) {
	if err := s.validateRecord(RecordTypeNegotiation, negotiation); err != nil {
		return domain.Negotiation{}, err
	}

	stored := s.store.AddNegotiation(negotiation)

	logrus.WithFields(logrus.Fields{
		"record_type": RecordTypeNegotiation,
		"record_id":   stored.ID,
	}).Info("Negociação adicionada")

	return stored, nil
}

func (s *Service) UpdateNegotiation(id string, negotiation domain.Negotiation) (domain.Negotiation, error) {
	if id == "" {
		return domain.Negotiation{}, NewRecordError(ErrIDRequired, apiErrors.ErrMissingRequiredData, RecordTypeNegotiation)
	}
	negotiation.ID = id

	if err := s.validateRecord(RecordTypeNegotiation, negotiation); err != nil {
		return domain.Negotiation{}, err
	}

	if err := s.store.UpdateNegotiation(negotiation); err != nil {
		return domain.Negotiation{}, storeError(err, RecordTypeNegotiation, id)
	}

	return negotiation, nil
}

func (s *Service) ListMarketingStrategies() []domain.MarketingStrategy {
	return s.store.ListMarketingStrategies()
}

func (s *Service) AddMarketingStrategy(strategy domain.MarketingStrategy) (domain.MarketingStrategy, error) {
	if err := s.validateRecord(RecordTypeStrategy, strategy); err != nil {
		return domain.MarketingStrategy{}, err
	}

	stored := s.store.AddMarketingStrategy(strategy)

	logrus.WithFields(logrus.Fields{
		"record_type": RecordTypeStrategy,
		"record_id":   stored.ID,
		"automations": len(stored.Automations),
	}).Info("Estratégia de marketing adicionada")

	return stored, nil
}

func (s *Service) UpdateMarketingStrategy(id string, strategy domain.MarketingStrategy) (domain.MarketingStrategy, error) {
	if id == "" {
		return domain.MarketingStrategy{}, NewRecordError(ErrIDRequired, apiErrors.ErrMissingRequiredData, RecordTypeStrategy)
	}
	strategy.ID = id

	if err := s.validateRecord(RecordTypeStrategy, strategy); err != nil {
		return domain.MarketingStrategy{}, err
	}

	if err := s.store.UpdateMarketingStrategy(strategy); err != nil {
		return domain.MarketingStrategy{}, storeError(err, RecordTypeStrategy, id)
	}

	// relê para devolver os ids gerados para novas automações
	for _, stored := range s.store.ListMarketingStrategies() {
		if stored.ID == id {
			return stored, nil
		}
	}
	return strategy, nil
}

func (s *Service) DeleteMarketingStrategy(id string) error {
	if err := s.store.DeleteMarketingStrategy(id); err != nil {
		return storeError(err, RecordTypeStrategy, id)
	}

	logrus.WithFields(logrus.Fields{
		"record_type": RecordTypeStrategy,
		"record_id":   id,
	}).Info("Estratégia de marketing removida com suas automações")

	return nil
}

func (s *Service) ListTeam() []domain.Person {
	return s.store.ListTeam()
}

func (s *Service) AddPerson(person domain.Person) (domain.Person, error) {
	if err := s.validateRecord(RecordTypePerson, person); err != nil {
		return domain.Person{}, err
	}

	return s.store.AddPerson(person), nil
}

func (s *Service) UpdatePerson(id string, person domain.Person) (domain.Person, error) {
	if id == "" {
		return domain.Person{}, NewRecordError(ErrIDRequired, apiErrors.ErrMissingRequiredData, RecordTypePerson)
	}
	person.ID = id

	if err := s.validateRecord(RecordTypePerson, person); err != nil {
		return domain.Person{}, err
	}

	if err := s.store.UpdatePerson(person); err != nil {
		return domain.Person{}, storeError(err, RecordTypePerson, id)
	}

	return person, nil
}

func (s *Service) ListStaffingNeeds() []domain.StaffingNeed {
	return s.store.ListStaffingNeeds()
}

func (s *Service) AddStaffingNeed(need domain.StaffingNeed) (domain.StaffingNeed, error) {
	if err := s.validateRecord(RecordTypeStaffingNeed, need); err != nil {
		return domain.StaffingNeed{}, err
	}

	return s.store.AddStaffingNeed(need), nil
}

func (s *Service) DeleteStaffingNeed(id string) error {
	if err := s.store.DeleteStaffingNeed(id); err != nil {
		return storeError(err, RecordTypeStaffingNeed, id)
	}
	return nil
}

func storeError(err error, recordType string, id string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return NewRecordErrorWithID(ErrRecordNotFound, apiErrors.ErrRecordNotFound, recordType, id)
	}
	return NewRecordErrorWithID(err, apiErrors.ErrInternalServer, recordType, id)
}

// warnInvertedPeriod só registra o problema: o contrato continua aceito
func warnInvertedPeriod(contract domain.Contract) {
	if !contract.HasInvertedPeriod() {
		return
	}

	logrus.WithFields(logrus.Fields{
		"record_type": RecordTypeContract,
		"record_id":   contract.ID,
		"start_date":  contract.StartDate.String(),
		"end_date":    contract.EndDate.String(),
	}).Warn("Contrato com data de término anterior à data de início; valor total e previsão ficarão negativos ou vazios")
}

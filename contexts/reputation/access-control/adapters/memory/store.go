package memory

import (
	"context"
	"sync"

	"chainreputation/contexts/reputation/access-control/domain/entities"
)

// Store keeps admin and contract registrations in memory.
type Store struct {
	mutex     sync.RWMutex
	admins    map[string]entities.Admin
	contracts map[string]entities.Contract
}

func NewStore() *Store {
	return &Store{
		admins:    make(map[string]entities.Admin),
		contracts: make(map[string]entities.Contract),
	}
}

func (s *Store) GetAdmin(_ context.Context, id string) (entities.Admin, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	admin, found := s.admins[id]
	return admin, found, nil
}

func (s *Store) SaveAdmin(_ context.Context, admin entities.Admin) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.admins[admin.ID] = admin
	return nil
}

func (s *Store) GetContract(_ context.Context, id string) (entities.Contract, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	contract, found := s.contracts[id]
	return contract, found, nil
}

func (s *Store) SaveContract(_ context.Context, contract entities.Contract) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.contracts[contract.ID] = contract
	return nil
}

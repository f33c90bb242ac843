package memory

import (
	"context"
	"sync"

	"chainreputation/contexts/reputation/standards-catalog/domain/entities"
)

// Store keeps standards in memory. The names slice preserves insertion order
// and holds "" holes where destroyed standards used to sit.
type Store struct {
	mutex     sync.RWMutex
	standards map[string]entities.Standard
	names     []string
	positions map[string]int
}

func NewStore() *Store {
	return &Store{
		standards: make(map[string]entities.Standard),
		positions: make(map[string]int),
	}
}

func (s *Store) GetStandard(_ context.Context, name string) (entities.Standard, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	standard, found := s.standards[name]
	return standard, found, nil
}

func (s *Store) SaveStandard(_ context.Context, standard entities.Standard) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.standards[standard.Name] = standard

	position, listed := s.positions[standard.Name]
	if standard.Destroyed {
		if listed {
			s.names[position] = ""
			delete(s.positions, standard.Name)
		}
		return nil
	}
	if !listed {
		s.positions[standard.Name] = len(s.names)
		s.names = append(s.names, standard.Name)
	}
	return nil
}

func (s *Store) StandardNames(_ context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	names := make([]string, len(s.names))
	copy(names, s.names)
	return names, nil
}

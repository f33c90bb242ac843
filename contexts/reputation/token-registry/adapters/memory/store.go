package memory

import (
	"context"
	"sync"

	"chainreputation/contexts/reputation/token-registry/domain/entities"
	domainerrors "chainreputation/contexts/reputation/token-registry/domain/errors"
)

// Store is the in-memory token repository used by tests and local wiring.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]entities.Token
}

func NewStore() *Store {
	return &Store{
		tokens: make(map[string]entities.Token),
	}
}

func (s *Store) GetToken(_ context.Context, name string) (entities.Token, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, found := s.tokens[name]
	if !found {
		return entities.Token{}, false, nil
	}
	token.Oracles = token.CloneOracles()
	return token, true, nil
}

func (s *Store) CreateToken(_ context.Context, token entities.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tokens[token.Name]; exists {
		return domainerrors.ErrNameInUse
	}
	token.Oracles = token.CloneOracles()
	s.tokens[token.Name] = token
	return nil
}

func (s *Store) SaveToken(_ context.Context, token entities.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token.Oracles = token.CloneOracles()
	s.tokens[token.Name] = token
	return nil
}

// InTransaction has no rollback semantics in memory; it simply runs fn.
func (s *Store) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

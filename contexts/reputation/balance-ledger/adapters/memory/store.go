package memory

import (
	"context"
	"sync"

	"chainreputation/contexts/reputation/balance-ledger/domain/entities"
)

type balanceKey struct {
	account string
	issuer  string
	token   string
}

type accountTokenKey struct {
	account string
	token   string
}

// Store is the in-memory balance repository used by tests and local wiring.
// Issuer enumeration order per (account, token) is first-issuance order.
type Store struct {
	mu       sync.Mutex
	balances map[balanceKey]uint64
	issuers  map[accountTokenKey][]string
}

func NewStore() *Store {
	return &Store{
		balances: make(map[balanceKey]uint64),
		issuers:  make(map[accountTokenKey][]string),
	}
}

func (s *Store) Credit(_ context.Context, account, issuer, tokenName string, amount uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := balanceKey{account: account, issuer: issuer, token: tokenName}
	s.trackIssuerLocked(account, issuer, tokenName)
	s.balances[key] += amount
	return s.balances[key], nil
}

func (s *Store) Debit(_ context.Context, account, issuer, tokenName string, amount uint64) (uint64, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := balanceKey{account: account, issuer: issuer, token: tokenName}
	s.trackIssuerLocked(account, issuer, tokenName)

	row := entities.Balance{Account: account, Issuer: issuer, TokenName: tokenName, Amount: s.balances[key]}
	applied := row.ClampDebit(amount)
	s.balances[key] = row.Amount - applied
	return applied, s.balances[key], nil
}

func (s *Store) Balance(_ context.Context, account, issuer, tokenName string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[balanceKey{account: account, issuer: issuer, token: tokenName}], nil
}

func (s *Store) AccountBalances(_ context.Context, account, tokenName string) ([]entities.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issuers := s.issuers[accountTokenKey{account: account, token: tokenName}]
	rows := make([]entities.Balance, 0, len(issuers))
	for _, issuer := range issuers {
		rows = append(rows, entities.Balance{
			Account:   account,
			Issuer:    issuer,
			TokenName: tokenName,
			Amount:    s.balances[balanceKey{account: account, issuer: issuer, token: tokenName}],
		})
	}
	return rows, nil
}

// InTransaction has no rollback semantics in memory; it simply runs fn.
func (s *Store) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) trackIssuerLocked(account, issuer, tokenName string) {
	key := accountTokenKey{account: account, token: tokenName}
	for _, seen := range s.issuers[key] {
		if seen == issuer {
			return
		}
	}
	s.issuers[key] = append(s.issuers[key], issuer)
}

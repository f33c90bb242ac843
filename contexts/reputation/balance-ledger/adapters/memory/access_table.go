package memory

import (
	"context"
	"sync"

	"chainreputation/contexts/reputation/balance-ledger/ports"
)

// AccessTable is an in-memory TokenAccess projection for tests and local
// wiring. Production wiring answers the same question from the token
// registry at the composition root.
type AccessTable struct {
	mu       sync.RWMutex
	owners   map[string]string
	oracles  map[string]map[string]struct{}
	inactive map[string]bool
}

func NewAccessTable() *AccessTable {
	return &AccessTable{
		owners:   make(map[string]string),
		oracles:  make(map[string]map[string]struct{}),
		inactive: make(map[string]bool),
	}
}

func (t *AccessTable) SetOwner(tokenName string, owner string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.owners[tokenName] = owner
}

func (t *AccessTable) GrantOracle(tokenName string, oracle string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.oracles[tokenName] == nil {
		t.oracles[tokenName] = make(map[string]struct{})
	}
	t.oracles[tokenName][oracle] = struct{}{}
}

func (t *AccessTable) SetInactive(tokenName string, inactive bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inactive[tokenName] = inactive
}

func (t *AccessTable) AuthorizeIssuer(_ context.Context, tokenName string, issuer string) (ports.IssuerGrant, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	owner, known := t.owners[tokenName]
	_, oracle := t.oracles[tokenName][issuer]
	return ports.IssuerGrant{
		Authorized: issuer != "" && (issuer == owner || oracle),
		Active:     known && !t.inactive[tokenName],
	}, nil
}

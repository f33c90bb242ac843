package ports

import (
	"context"

	"chainreputation/contexts/reputation/balance-ledger/domain/entities"
)

// Repository persists issuer-scoped balance rows. Credit and Debit must be
// atomic per row; Debit clamps at zero and reports the applied amount.
// InTransaction runs fn so the balance write and the audit outbox append it
// makes commit or roll back as one unit.
type Repository interface {
	Credit(ctx context.Context, account string, issuer string, tokenName string, amount uint64) (uint64, error)
	Debit(ctx context.Context, account string, issuer string, tokenName string, amount uint64) (applied uint64, remaining uint64, err error)
	Balance(ctx context.Context, account string, issuer string, tokenName string) (uint64, error)
	AccountBalances(ctx context.Context, account string, tokenName string) ([]entities.Balance, error)
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IssuerGrant mirrors the registry's answer to the injected authorization
// check: whether the issuer may touch the token and whether the token is
// currently active.
type IssuerGrant struct {
	Authorized bool
	Active     bool
}

// TokenAccess is the injected authorization boundary. The token registry
// implements it behind an adapter wired at the composition root.
type TokenAccess interface {
	AuthorizeIssuer(ctx context.Context, tokenName string, issuer string) (IssuerGrant, error)
}

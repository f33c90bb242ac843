package ports

import (
	"context"

	"chainreputation/contexts/reputation/token-registry/domain/entities"
)

// Repository persists token records. Authorization is decided in the
// application layer; the repository only stores state.
//
// CreateToken is insert-only and fails with the domain name-in-use error when
// the name already exists, so uniqueness holds at the storage layer and not
// just in the service's pre-check. SaveToken updates an existing record.
// InTransaction runs fn so that every repository call made inside it, the
// audit outbox append included, commits or rolls back as one unit.
type Repository interface {
	GetToken(ctx context.Context, name string) (entities.Token, bool, error)
	CreateToken(ctx context.Context, token entities.Token) error
	SaveToken(ctx context.Context, token entities.Token) error
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IssuerGrant is the answer the registry gives the balance ledger when it
// asks whether an issuer may touch a token.
type IssuerGrant struct {
	Authorized bool
	Active     bool
}

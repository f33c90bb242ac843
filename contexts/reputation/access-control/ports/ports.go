package ports

import (
	"context"

	"chainreputation/contexts/reputation/access-control/domain/entities"
)

// Repository persists admin and contract registrations.
type Repository interface {
	GetAdmin(ctx context.Context, id string) (entities.Admin, bool, error)
	SaveAdmin(ctx context.Context, admin entities.Admin) error
	GetContract(ctx context.Context, id string) (entities.Contract, bool, error)
	SaveContract(ctx context.Context, contract entities.Contract) error
}

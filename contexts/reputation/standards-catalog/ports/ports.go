package ports

import (
	"context"

	"chainreputation/contexts/reputation/standards-catalog/domain/entities"
)

// Repository persists standards and their enumerable name list.
//
// SaveStandard keeps the name list consistent with the saved row: an active
// standard is appended when absent, a destroyed standard has its slot blanked
// in place (the list never shrinks).
type Repository interface {
	GetStandard(ctx context.Context, name string) (entities.Standard, bool, error)
	SaveStandard(ctx context.Context, standard entities.Standard) error
	StandardNames(ctx context.Context) ([]string, error)
}

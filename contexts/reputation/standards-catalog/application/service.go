package application

import (
	"context"
	"log/slog"
	"strings"

	"chainreputation/contexts/reputation/standards-catalog/domain/entities"
	domainerrors "chainreputation/contexts/reputation/standards-catalog/domain/errors"
	"chainreputation/contexts/reputation/standards-catalog/ports"
)

type Service struct {
	Owner  string
	Repo   ports.Repository
	Events ports.EventPublisher
	Logger *slog.Logger
}

// ManageStandard upserts or destroys a named standard. Only the instance
// owner may call it. A zero repAmount destroys the standard and blanks its
// slot in the name list; any other value upserts the delta and appends the
// name when it was not listed yet.
func (s Service) ManageStandard(ctx context.Context, caller string, name string, repAmount int64) error {
	caller, name = strings.TrimSpace(caller), strings.TrimSpace(name)
	if caller == "" || caller != s.Owner {
		return domainerrors.ErrUnauthorized
	}
	if name == "" {
		return domainerrors.ErrInvalidRequest
	}

	standard := entities.Standard{
		Name:      name,
		RepAmount: repAmount,
		Destroyed: repAmount == 0,
	}
	if err := s.Repo.SaveStandard(ctx, standard); err != nil {
		return err
	}

	if err := s.Events.PublishStandardModified(ctx, caller, ports.StandardModifiedEvent{
		Name:      standard.Name,
		RepAmount: standard.RepAmount,
		Destroyed: standard.Destroyed,
	}); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("standard managed",
		"event", "standard_managed",
		"module", "reputation/standards-catalog",
		"layer", "application",
		"standard_name", name,
		"rep_amount", repAmount,
		"destroyed", standard.Destroyed,
	)
	return nil
}

// GetStandard reads a standard. Absent and destroyed standards both read
// back with a zero delta and the destroyed flag set.
func (s Service) GetStandard(ctx context.Context, name string) (entities.Standard, error) {
	name = strings.TrimSpace(name)
	standard, found, err := s.Repo.GetStandard(ctx, name)
	if err != nil {
		return entities.Standard{}, err
	}
	if !found || standard.Destroyed {
		return entities.Standard{Name: name, RepAmount: 0, Destroyed: true}, nil
	}
	return standard, nil
}

// StandardNames returns the enumerable name list in insertion order.
// Destroyed standards show up as blank slots.
func (s Service) StandardNames(ctx context.Context) ([]string, error) {
	return s.Repo.StandardNames(ctx)
}

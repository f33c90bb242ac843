package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"chainreputation/contexts/reputation/access-control/domain/entities"
	domainerrors "chainreputation/contexts/reputation/access-control/domain/errors"
	"chainreputation/contexts/reputation/access-control/ports"
)

// Service mutations run one at a time under Lock: membership checks and
// counter increments are read-decide-write sequences that must not
// interleave.
type Service struct {
	Owner  string
	Repo   ports.Repository
	Events ports.EventPublisher
	Logger *slog.Logger
	Lock   *sync.Mutex
}

// AddAdmin grants the admin role. Only the instance owner may call it.
// Re-adding a previously removed admin keeps its accumulated counters.
func (s Service) AddAdmin(ctx context.Context, caller string, adminID string) error {
	caller, adminID = strings.TrimSpace(caller), strings.TrimSpace(adminID)
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	if adminID == "" {
		return domainerrors.ErrInvalidRequest
	}

	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	admin, found, err := s.Repo.GetAdmin(ctx, adminID)
	if err != nil {
		return err
	}
	if found && admin.Authorized {
		return domainerrors.ErrAlreadyAuthorized
	}
	if !found {
		admin = entities.Admin{ID: adminID}
	}
	admin.Authorized = true
	if err := s.Repo.SaveAdmin(ctx, admin); err != nil {
		return err
	}

	if err := s.Events.PublishAdminAdded(ctx, caller, ports.AdminChangedEvent{Admin: adminID}); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("admin added",
		"event", "admin_added",
		"module", "reputation/access-control",
		"layer", "application",
		"admin", adminID,
	)
	return nil
}

// RemoveAdmin revokes the admin role but keeps the audit counters.
func (s Service) RemoveAdmin(ctx context.Context, caller string, adminID string) error {
	caller, adminID = strings.TrimSpace(caller), strings.TrimSpace(adminID)
	if err := s.requireOwner(caller); err != nil {
		return err
	}

	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	admin, found, err := s.Repo.GetAdmin(ctx, adminID)
	if err != nil {
		return err
	}
	if !found || !admin.Authorized {
		return domainerrors.ErrNotAuthorized
	}
	admin.Authorized = false
	if err := s.Repo.SaveAdmin(ctx, admin); err != nil {
		return err
	}

	if err := s.Events.PublishAdminRemoved(ctx, caller, ports.AdminChangedEvent{Admin: adminID}); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("admin removed",
		"event", "admin_removed",
		"module", "reputation/access-control",
		"layer", "application",
		"admin", adminID,
	)
	return nil
}

// AddContract registers an external integration. Only the instance owner may
// call it.
func (s Service) AddContract(ctx context.Context, caller string, contractID string, name string) error {
	caller, contractID = strings.TrimSpace(caller), strings.TrimSpace(contractID)
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	if contractID == "" {
		return domainerrors.ErrInvalidRequest
	}

	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	contract, found, err := s.Repo.GetContract(ctx, contractID)
	if err != nil {
		return err
	}
	if found && contract.Authorized {
		return domainerrors.ErrAlreadyAuthorized
	}
	contract = entities.Contract{ID: contractID, Name: strings.TrimSpace(name), Authorized: true}
	if err := s.Repo.SaveContract(ctx, contract); err != nil {
		return err
	}

	if err := s.Events.PublishContractAdded(ctx, caller, ports.ContractChangedEvent{
		Contract: contractID,
		Name:     contract.Name,
	}); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("contract added",
		"event", "contract_added",
		"module", "reputation/access-control",
		"layer", "application",
		"contract", contractID,
		"contract_name", contract.Name,
	)
	return nil
}

// RemoveContract revokes a contract registration.
func (s Service) RemoveContract(ctx context.Context, caller string, contractID string) error {
	caller, contractID = strings.TrimSpace(caller), strings.TrimSpace(contractID)
	if err := s.requireOwner(caller); err != nil {
		return err
	}

	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	contract, found, err := s.Repo.GetContract(ctx, contractID)
	if err != nil {
		return err
	}
	if !found || !contract.Authorized {
		return domainerrors.ErrNotAuthorized
	}
	contract.Authorized = false
	if err := s.Repo.SaveContract(ctx, contract); err != nil {
		return err
	}

	if err := s.Events.PublishContractRemoved(ctx, caller, ports.ContractChangedEvent{
		Contract: contractID,
		Name:     contract.Name,
	}); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("contract removed",
		"event", "contract_removed",
		"module", "reputation/access-control",
		"layer", "application",
		"contract", contractID,
	)
	return nil
}

// GetAdmin reads an admin registration. Unknown principals read back as an
// unauthorized zero-counter admin.
func (s Service) GetAdmin(ctx context.Context, adminID string) (entities.Admin, error) {
	adminID = strings.TrimSpace(adminID)
	admin, found, err := s.Repo.GetAdmin(ctx, adminID)
	if err != nil {
		return entities.Admin{}, err
	}
	if !found {
		return entities.Admin{ID: adminID}, nil
	}
	return admin, nil
}

// ResolveTier maps a caller to its privilege tier.
func (s Service) ResolveTier(ctx context.Context, caller string) (entities.Tier, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return entities.TierNone, nil
	}
	if caller == s.Owner {
		return entities.TierOwner, nil
	}

	admin, found, err := s.Repo.GetAdmin(ctx, caller)
	if err != nil {
		return entities.TierNone, err
	}
	if found && admin.Authorized {
		return entities.TierAdmin, nil
	}

	contract, found, err := s.Repo.GetContract(ctx, caller)
	if err != nil {
		return entities.TierNone, err
	}
	if found && contract.Authorized {
		return entities.TierContract, nil
	}
	return entities.TierNone, nil
}

// RecordIssued adds to an admin's issued counter. Unknown principals are
// ignored; callers resolve the tier first.
func (s Service) RecordIssued(ctx context.Context, adminID string, amount uint64) error {
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}
	admin, found, err := s.Repo.GetAdmin(ctx, strings.TrimSpace(adminID))
	if err != nil || !found {
		return err
	}
	admin.TotalRepIssued += amount
	return s.Repo.SaveAdmin(ctx, admin)
}

// RecordBurned adds to an admin's burned counter.
func (s Service) RecordBurned(ctx context.Context, adminID string, amount uint64) error {
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}
	admin, found, err := s.Repo.GetAdmin(ctx, strings.TrimSpace(adminID))
	if err != nil || !found {
		return err
	}
	admin.TotalRepBurned += amount
	return s.Repo.SaveAdmin(ctx, admin)
}

func (s Service) requireOwner(caller string) error {
	if caller == "" || caller != s.Owner {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

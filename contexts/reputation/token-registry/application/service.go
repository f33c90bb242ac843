package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"chainreputation/contexts/reputation/token-registry/domain/entities"
	domainerrors "chainreputation/contexts/reputation/token-registry/domain/errors"
	"chainreputation/contexts/reputation/token-registry/ports"
)

// Service mutations run one at a time under Lock: every write is a
// read-decide-write sequence, and the name-uniqueness and membership checks
// only hold when no other mutation interleaves.
type Service struct {
	Repo   ports.Repository
	Events ports.EventPublisher
	Logger *slog.Logger
	Lock   *sync.Mutex
}

// CreateToken registers a new token name. Anyone may create; the caller
// becomes the owner. Names are never reused, so a created name stays taken
// even after the token is deactivated.
func (s Service) CreateToken(
	ctx context.Context,
	caller string,
	cid string,
	name string,
	oracles []string,
) (entities.Token, error) {
	caller = strings.TrimSpace(caller)
	name = strings.TrimSpace(name)
	if caller == "" || name == "" {
		return entities.Token{}, domainerrors.ErrInvalidRequest
	}

	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	existing, found, err := s.Repo.GetToken(ctx, name)
	if err != nil {
		return entities.Token{}, err
	}
	if found && existing.State.Created() {
		return entities.Token{}, domainerrors.ErrNameInUse
	}

	token := entities.Token{
		Name:    name,
		CID:     cid,
		State:   entities.StateActive,
		Owner:   caller,
		Oracles: append([]string(nil), oracles...),
	}
	err = s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.Repo.CreateToken(ctx, token); err != nil {
			return err
		}
		return s.Events.PublishTokenChanged(ctx, caller, ports.TokenChangedEvent{
			TokenName: name,
			Owner:     caller,
			State:     string(token.State),
		})
	})
	if err != nil {
		return entities.Token{}, err
	}

	ResolveLogger(s.Logger).Info("token created",
		"event", "registry_token_created",
		"module", "reputation/token-registry",
		"layer", "application",
		"token_name", name,
		"owner", caller,
		"oracle_count", len(token.Oracles),
	)
	return token, nil
}

// TransferOwnership moves a token to a new owner. Owner-only.
func (s Service) TransferOwnership(ctx context.Context, caller string, name string, newOwner string) error {
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	token, err := s.loadOwned(ctx, caller, name)
	if err != nil {
		return err
	}
	newOwner = strings.TrimSpace(newOwner)
	if newOwner == "" {
		return domainerrors.ErrInvalidRequest
	}
	if newOwner == token.Owner {
		return domainerrors.ErrNoChange
	}

	previous := token.Owner
	token.Owner = newOwner
	err = s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.Repo.SaveToken(ctx, token); err != nil {
			return err
		}
		return s.Events.PublishOwnerChanged(ctx, caller, ports.OwnerChangedEvent{
			TokenName:     name,
			PreviousOwner: previous,
			NewOwner:      newOwner,
		})
	})
	if err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("token ownership transferred",
		"event", "registry_owner_changed",
		"module", "reputation/token-registry",
		"layer", "application",
		"token_name", name,
		"previous_owner", previous,
		"new_owner", newOwner,
	)
	return nil
}

// ChangeTokenStandard replaces the token CID. Owner-only.
func (s Service) ChangeTokenStandard(ctx context.Context, caller string, name string, newCID string) error {
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	token, err := s.loadOwned(ctx, caller, name)
	if err != nil {
		return err
	}
	if newCID == token.CID {
		return domainerrors.ErrNoChange
	}

	token.CID = newCID
	err = s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.Repo.SaveToken(ctx, token); err != nil {
			return err
		}
		return s.Events.PublishTokenStandardChanged(ctx, caller, ports.TokenStandardChangedEvent{
			TokenName: name,
			CID:       newCID,
		})
	})
	if err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("token cid changed",
		"event", "registry_cid_changed",
		"module", "reputation/token-registry",
		"layer", "application",
		"token_name", name,
	)
	return nil
}

// ChangeTokenState toggles a created token between active and inactive.
// Owner-only. Deactivation is the soft delete: the name stays reserved and
// balances stay readable, but issuance is frozen.
func (s Service) ChangeTokenState(ctx context.Context, caller string, name string, rawState string) error {
	newState, ok := entities.ParseTokenState(strings.TrimSpace(rawState))
	if !ok {
		return domainerrors.ErrInvalidRequest
	}

	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	token, err := s.loadOwned(ctx, caller, name)
	if err != nil {
		return err
	}
	if newState == token.State {
		return domainerrors.ErrNoChange
	}

	token.State = newState
	err = s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.Repo.SaveToken(ctx, token); err != nil {
			return err
		}
		return s.Events.PublishTokenStateChanged(ctx, caller, ports.TokenStateChangedEvent{
			TokenName: name,
			State:     string(newState),
		})
	})
	if err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("token state changed",
		"event", "registry_state_changed",
		"module", "reputation/token-registry",
		"layer", "application",
		"token_name", name,
		"state", string(newState),
	)
	return nil
}

// AddOracle authorizes an issuer for the token. Owner-only.
func (s Service) AddOracle(ctx context.Context, caller string, name string, address string) error {
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	token, err := s.loadOwned(ctx, caller, name)
	if err != nil {
		return err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domainerrors.ErrInvalidRequest
	}
	if token.IsOracle(address) {
		return domainerrors.ErrAlreadyAuthorized
	}

	token.Oracles = append(token.CloneOracles(), address)
	err = s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.Repo.SaveToken(ctx, token); err != nil {
			return err
		}
		return s.Events.PublishOracleAdded(ctx, caller, ports.OracleChangedEvent{
			TokenName: name,
			Oracle:    address,
		})
	})
	if err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("oracle added",
		"event", "registry_oracle_added",
		"module", "reputation/token-registry",
		"layer", "application",
		"token_name", name,
		"oracle", address,
	)
	return nil
}

// RemoveOracle revokes an issuer. Owner-only. Removal compacts the list so
// the remaining oracles keep their relative order for enumeration.
func (s Service) RemoveOracle(ctx context.Context, caller string, name string, address string) error {
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}

	token, err := s.loadOwned(ctx, caller, name)
	if err != nil {
		return err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domainerrors.ErrInvalidRequest
	}
	if !token.IsOracle(address) {
		return domainerrors.ErrNotAuthorized
	}

	oracles := make([]string, 0, len(token.Oracles)-1)
	for _, oracle := range token.Oracles {
		if oracle != address {
			oracles = append(oracles, oracle)
		}
	}
	token.Oracles = oracles
	err = s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.Repo.SaveToken(ctx, token); err != nil {
			return err
		}
		return s.Events.PublishOracleRemoved(ctx, caller, ports.OracleChangedEvent{
			TokenName: name,
			Oracle:    address,
		})
	})
	if err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("oracle removed",
		"event", "registry_oracle_removed",
		"module", "reputation/token-registry",
		"layer", "application",
		"token_name", name,
		"oracle", address,
	)
	return nil
}

// GetToken returns the token record. Unrestricted read; an uninitialized
// name reads back with empty CID, null state, and empty owner.
func (s Service) GetToken(ctx context.Context, name string) (entities.Token, error) {
	token, found, err := s.Repo.GetToken(ctx, strings.TrimSpace(name))
	if err != nil {
		return entities.Token{}, err
	}
	if !found {
		return entities.Token{Name: strings.TrimSpace(name)}, nil
	}
	return token, nil
}

// GetOracles returns the token's oracle list in insertion order.
func (s Service) GetOracles(ctx context.Context, name string) ([]string, error) {
	token, err := s.GetToken(ctx, name)
	if err != nil {
		return nil, err
	}
	return token.CloneOracles(), nil
}

// AuthorizeIssuer answers the balance ledger's injected authorization check:
// whether the issuer is the token owner or one of its oracles, and whether
// the token is currently active.
func (s Service) AuthorizeIssuer(ctx context.Context, name string, issuer string) (ports.IssuerGrant, error) {
	token, err := s.GetToken(ctx, name)
	if err != nil {
		return ports.IssuerGrant{}, err
	}
	return ports.IssuerGrant{
		Authorized: token.GrantsIssuance(strings.TrimSpace(issuer)),
		Active:     token.State == entities.StateActive,
	}, nil
}

func (s Service) loadOwned(ctx context.Context, caller string, name string) (entities.Token, error) {
	caller = strings.TrimSpace(caller)
	name = strings.TrimSpace(name)
	if caller == "" {
		return entities.Token{}, domainerrors.ErrUnauthorized
	}
	token, found, err := s.Repo.GetToken(ctx, name)
	if err != nil {
		return entities.Token{}, err
	}
	if !found || token.Owner != caller {
		return entities.Token{}, domainerrors.ErrUnauthorized
	}
	return token, nil
}

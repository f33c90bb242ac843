package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	domainerrors "chainreputation/contexts/reputation/balance-ledger/domain/errors"
	"chainreputation/contexts/reputation/balance-ledger/ports"
)

// Service mutations run one at a time under Lock so the authorization check
// and the balance write cannot interleave with other writers.
type Service struct {
	Repo   ports.Repository
	Access ports.TokenAccess
	Events ports.EventPublisher
	Logger *slog.Logger
	Lock   *sync.Mutex
}

// Issue adds reputation to an account under the calling issuer's scope.
// The caller must be the token owner or one of its oracles, and the token
// must be active. Returns the issuer-scoped balance after the credit.
func (s Service) Issue(ctx context.Context, caller string, tokenName string, to string, amount int64) (uint64, error) {
	caller, tokenName, to = strings.TrimSpace(caller), strings.TrimSpace(tokenName), strings.TrimSpace(to)
	if amount < 0 {
		return 0, domainerrors.ErrInvalidAmount
	}
	if tokenName == "" || to == "" {
		return 0, domainerrors.ErrInvalidRequest
	}
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}
	if err := s.authorize(ctx, caller, tokenName); err != nil {
		return 0, err
	}

	var balance uint64
	err := s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.Repo.Credit(ctx, to, caller, tokenName, uint64(amount))
		if err != nil {
			return err
		}
		return s.Events.PublishIssued(ctx, caller, ports.IssuedEvent{
			TokenName: tokenName,
			To:        to,
			Amount:    uint64(amount),
		})
	})
	if err != nil {
		return 0, err
	}

	ResolveLogger(s.Logger).Info("reputation issued",
		"event", "ledger_issued",
		"module", "reputation/balance-ledger",
		"layer", "application",
		"token_name", tokenName,
		"issuer", caller,
		"to", to,
		"amount", amount,
	)
	return balance, nil
}

// Burn removes reputation from an account under the calling issuer's scope.
// Burning more than held clamps the balance to zero; the returned (and
// emitted) amount is the actual decrease applied.
func (s Service) Burn(ctx context.Context, caller string, tokenName string, from string, amount int64) (uint64, error) {
	caller, tokenName, from = strings.TrimSpace(caller), strings.TrimSpace(tokenName), strings.TrimSpace(from)
	if amount < 0 {
		return 0, domainerrors.ErrInvalidAmount
	}
	if tokenName == "" || from == "" {
		return 0, domainerrors.ErrInvalidRequest
	}
	if s.Lock != nil {
		s.Lock.Lock()
		defer s.Lock.Unlock()
	}
	if err := s.authorize(ctx, caller, tokenName); err != nil {
		return 0, err
	}

	var applied, remaining uint64
	err := s.Repo.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		applied, remaining, err = s.Repo.Debit(ctx, from, caller, tokenName, uint64(amount))
		if err != nil {
			return err
		}
		return s.Events.PublishBurned(ctx, caller, ports.BurnedEvent{
			TokenName: tokenName,
			From:      from,
			Amount:    applied,
		})
	})
	if err != nil {
		return 0, err
	}

	ResolveLogger(s.Logger).Info("reputation burned",
		"event", "ledger_burned",
		"module", "reputation/balance-ledger",
		"layer", "application",
		"token_name", tokenName,
		"issuer", caller,
		"from", from,
		"requested", amount,
		"applied", applied,
		"remaining", remaining,
	)
	return applied, nil
}

// BalanceOf returns the issuer-scoped balance. Unrestricted read; the null
// principal is rejected the way the chain rejected the zero address.
func (s Service) BalanceOf(ctx context.Context, account string, issuer string, tokenName string) (uint64, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return 0, domainerrors.ErrInvalidQuery
	}
	return s.Repo.Balance(ctx, account, strings.TrimSpace(issuer), strings.TrimSpace(tokenName))
}

// TrueBalanceOf sums the account's balance across every issuer that ever
// issued for the token.
func (s Service) TrueBalanceOf(ctx context.Context, account string, tokenName string) (uint64, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return 0, domainerrors.ErrInvalidQuery
	}

	rows, err := s.Repo.AccountBalances(ctx, account, strings.TrimSpace(tokenName))
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, row := range rows {
		total += row.Amount
	}
	return total, nil
}

func (s Service) authorize(ctx context.Context, caller string, tokenName string) error {
	if caller == "" {
		return domainerrors.ErrUnauthorized
	}
	grant, err := s.Access.AuthorizeIssuer(ctx, tokenName, caller)
	if err != nil {
		return err
	}
	if !grant.Authorized {
		return domainerrors.ErrUnauthorized
	}
	if !grant.Active {
		return domainerrors.ErrTokenInactive
	}
	return nil
}

package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	application "chainreputation/contexts/reputation/batch-engine/application"
	domainerrors "chainreputation/contexts/reputation/batch-engine/domain/errors"
	"chainreputation/contexts/reputation/batch-engine/ports"
)

// StandardCount repeats one standard a positive number of times.
type StandardCount struct {
	StandardName string
	Count        int64
}

// UserBatchEntry applies a set of repeated standards to one account.
type UserBatchEntry struct {
	To     string
	Counts []StandardCount
}

// ApplyUserBatchCommand contains transport-agnostic input for a per-user batch.
type ApplyUserBatchCommand struct {
	Caller  string
	Entries []UserBatchEntry
}

// ApplyUserBatchUseCase nets repeated standards into one balance move per
// (account, standard) pair, so the event count stays proportional to pairs
// rather than repetitions. Aborts atomically on any destroyed standard.
type ApplyUserBatchUseCase struct {
	Access    ports.AccessPolicy
	Standards ports.StandardsReader
	Ledger    ports.ReputationLedger
	Lock      *sync.Mutex
	Logger    *slog.Logger
}

// Execute resolves and nets every pair up front, then applies the deltas.
func (u ApplyUserBatchUseCase) Execute(ctx context.Context, cmd ApplyUserBatchCommand) error {
	logger := application.ResolveLogger(u.Logger)

	caller, tier, err := resolveCaller(ctx, u.Access, cmd.Caller)
	if err != nil {
		return err
	}
	if len(cmd.Entries) == 0 {
		return domainerrors.ErrInvalidRequest
	}

	if u.Lock != nil {
		u.Lock.Lock()
		defer u.Lock.Unlock()
	}

	type nettedPair struct {
		to    string
		delta int64
	}
	var pairs []nettedPair
	for _, entry := range cmd.Entries {
		to := strings.TrimSpace(entry.To)
		if to == "" || len(entry.Counts) == 0 {
			return domainerrors.ErrInvalidRequest
		}
		for _, repeat := range entry.Counts {
			standard, err := resolveStandard(ctx, u.Standards, to, repeat.StandardName)
			if err != nil {
				return err
			}
			delta, err := netDelta(standard.RepAmount, repeat.Count)
			if err != nil {
				return err
			}
			pairs = append(pairs, nettedPair{to: to, delta: delta})
		}
	}

	for _, pair := range pairs {
		if err := applyDelta(ctx, u.Ledger, u.Access, tier, caller, pair.to, pair.delta); err != nil {
			return err
		}
	}

	logger.Info("user batch applied",
		"event", "batch_user_batch_applied",
		"module", "reputation/batch-engine",
		"layer", "application",
		"caller", caller,
		"tier", string(tier),
		"user_count", len(cmd.Entries),
		"pair_count", len(pairs),
	)
	return nil
}

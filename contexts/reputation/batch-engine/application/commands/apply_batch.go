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

// BatchEntry applies one standard to one account.
type BatchEntry struct {
	To           string
	StandardName string
}

// ApplyBatchCommand contains transport-agnostic input for an array batch.
type ApplyBatchCommand struct {
	Caller  string
	Entries []BatchEntry
}

// ApplyBatchUseCase applies a list of (account, standard) entries in order.
// The whole batch aborts before any balance moves when an entry references a
// destroyed standard.
type ApplyBatchUseCase struct {
	Access    ports.AccessPolicy
	Standards ports.StandardsReader
	Ledger    ports.ReputationLedger
	Lock      *sync.Mutex
	Logger    *slog.Logger
}

// Execute resolves every standard up front, then applies the entries.
func (u ApplyBatchUseCase) Execute(ctx context.Context, cmd ApplyBatchCommand) error {
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

	type resolvedEntry struct {
		to    string
		delta int64
	}
	resolved := make([]resolvedEntry, 0, len(cmd.Entries))
	for _, entry := range cmd.Entries {
		to := strings.TrimSpace(entry.To)
		if to == "" {
			return domainerrors.ErrInvalidRequest
		}
		standard, err := resolveStandard(ctx, u.Standards, to, entry.StandardName)
		if err != nil {
			return err
		}
		resolved = append(resolved, resolvedEntry{to: to, delta: standard.RepAmount})
	}

	for _, entry := range resolved {
		if err := applyDelta(ctx, u.Ledger, u.Access, tier, caller, entry.to, entry.delta); err != nil {
			return err
		}
	}

	logger.Info("batch applied",
		"event", "batch_applied",
		"module", "reputation/batch-engine",
		"layer", "application",
		"caller", caller,
		"tier", string(tier),
		"entry_count", len(cmd.Entries),
	)
	return nil
}

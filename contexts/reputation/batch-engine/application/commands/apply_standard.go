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

// ApplyStandardCommand contains transport-agnostic input for one update.
type ApplyStandardCommand struct {
	Caller       string
	To           string
	StandardName string
}

// ApplyStandardUseCase applies a single standard's signed delta to one account.
type ApplyStandardUseCase struct {
	Access    ports.AccessPolicy
	Standards ports.StandardsReader
	Ledger    ports.ReputationLedger
	Lock      *sync.Mutex
	Logger    *slog.Logger
}

// Execute resolves the caller and the standard, then moves the balance.
func (u ApplyStandardUseCase) Execute(ctx context.Context, cmd ApplyStandardCommand) error {
	logger := application.ResolveLogger(u.Logger)

	caller, tier, err := resolveCaller(ctx, u.Access, cmd.Caller)
	if err != nil {
		return err
	}
	to := strings.TrimSpace(cmd.To)
	if to == "" {
		return domainerrors.ErrInvalidRequest
	}

	if u.Lock != nil {
		u.Lock.Lock()
		defer u.Lock.Unlock()
	}

	standard, err := resolveStandard(ctx, u.Standards, to, cmd.StandardName)
	if err != nil {
		return err
	}
	if err := applyDelta(ctx, u.Ledger, u.Access, tier, caller, to, standard.RepAmount); err != nil {
		return err
	}

	logger.Info("standard applied",
		"event", "batch_standard_applied",
		"module", "reputation/batch-engine",
		"layer", "application",
		"caller", caller,
		"tier", string(tier),
		"to", to,
		"standard_name", standard.Name,
		"rep_amount", standard.RepAmount,
	)
	return nil
}

package commands

import (
	"context"
	"math"
	"strings"

	domainerrors "chainreputation/contexts/reputation/batch-engine/domain/errors"
	"chainreputation/contexts/reputation/batch-engine/ports"
)

// resolveCaller trims and authorizes the caller, returning its tier.
func resolveCaller(ctx context.Context, access ports.AccessPolicy, caller string) (string, ports.CallerTier, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return "", ports.TierNone, domainerrors.ErrUnauthorized
	}
	tier, err := access.ResolveTier(ctx, caller)
	if err != nil {
		return "", ports.TierNone, err
	}
	if !tier.Privileged() {
		return "", ports.TierNone, domainerrors.ErrUnauthorized
	}
	return caller, tier, nil
}

// resolveStandard looks up one standard, failing the whole call when it is
// destroyed or unknown.
func resolveStandard(ctx context.Context, standards ports.StandardsReader, account string, name string) (ports.StandardView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.StandardView{}, domainerrors.ErrInvalidRequest
	}
	view, err := standards.GetStandard(ctx, name)
	if err != nil {
		return ports.StandardView{}, err
	}
	if view.Destroyed {
		return ports.StandardView{}, &domainerrors.DestroyedStandardError{Account: account, Standard: name}
	}
	return view, nil
}

// applyDelta pushes one signed delta into the ledger and, for admin callers,
// accrues the matching audit counter. Burn counters accrue the decrease
// actually applied after clamping.
func applyDelta(ctx context.Context, ledger ports.ReputationLedger, access ports.AccessPolicy, tier ports.CallerTier, caller string, to string, delta int64) error {
	if delta > 0 {
		if err := ledger.Issue(ctx, to, uint64(delta)); err != nil {
			return err
		}
		if tier == ports.TierAdmin {
			return access.RecordIssued(ctx, caller, uint64(delta))
		}
		return nil
	}

	applied, err := ledger.Burn(ctx, to, uint64(-delta))
	if err != nil {
		return err
	}
	if tier == ports.TierAdmin {
		return access.RecordBurned(ctx, caller, applied)
	}
	return nil
}

// netDelta multiplies a standard's delta by a repetition count, guarding
// against int64 overflow.
func netDelta(repAmount int64, count int64) (int64, error) {
	if count <= 0 {
		return 0, domainerrors.ErrInvalidAmount
	}
	magnitude := repAmount
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude > math.MaxInt64/count {
		return 0, domainerrors.ErrInvalidRequest
	}
	return repAmount * count, nil
}

package ports

import "context"

// CallerTier is the privilege level the access-control registry resolves a
// caller to.
type CallerTier string

const (
	TierNone     CallerTier = ""
	TierOwner    CallerTier = "owner"
	TierAdmin    CallerTier = "admin"
	TierContract CallerTier = "contract"
)

// Privileged reports whether the tier may drive standard-based updates.
func (t CallerTier) Privileged() bool {
	return t == TierOwner || t == TierAdmin || t == TierContract
}

// AccessPolicy resolves caller tiers and accrues admin audit counters. It is
// implemented over the access-control module at the composition root.
type AccessPolicy interface {
	ResolveTier(ctx context.Context, caller string) (CallerTier, error)
	RecordIssued(ctx context.Context, admin string, amount uint64) error
	RecordBurned(ctx context.Context, admin string, amount uint64) error
}

// StandardView is the engine's read model of a catalog standard.
type StandardView struct {
	Name      string
	RepAmount int64
	Destroyed bool
}

// StandardsReader looks up standards. Destroyed and unknown standards both
// come back with the Destroyed flag set.
type StandardsReader interface {
	GetStandard(ctx context.Context, name string) (StandardView, error)
}

// ReputationLedger moves balances for the instance token. The implementation
// fixes the issuing principal and token name, so the engine only says who and
// how much. Burn returns the decrease actually applied after clamping.
type ReputationLedger interface {
	Issue(ctx context.Context, to string, amount uint64) error
	Burn(ctx context.Context, from string, amount uint64) (uint64, error)
}

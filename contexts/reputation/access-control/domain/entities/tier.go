package entities

// Tier is the privilege level a caller resolves to.
type Tier string

const (
	TierNone     Tier = ""
	TierOwner    Tier = "owner"
	TierAdmin    Tier = "admin"
	TierContract Tier = "contract"
)

// Privileged reports whether the tier may drive standard-based updates.
func (t Tier) Privileged() bool {
	return t == TierOwner || t == TierAdmin || t == TierContract
}

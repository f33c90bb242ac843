package entities

// Balance is one issuer-scoped balance row. Amounts are unsigned; burns clamp
// at zero instead of underflowing.
type Balance struct {
	Account   string
	Issuer    string
	TokenName string
	Amount    uint64
}

// ClampDebit returns the amount actually removable from the balance when
// debiting the requested amount. Burning more than held clamps to the
// current balance.
func (b Balance) ClampDebit(requested uint64) uint64 {
	if requested > b.Amount {
		return b.Amount
	}
	return requested
}

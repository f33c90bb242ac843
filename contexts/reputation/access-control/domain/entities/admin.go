package entities

// Admin is a globally authorized principal with audit counters. The counters
// only ever grow, even across remove/re-add cycles.
type Admin struct {
	ID             string
	Authorized     bool
	TotalRepIssued uint64
	TotalRepBurned uint64
}

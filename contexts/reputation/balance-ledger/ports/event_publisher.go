package ports

import "context"

type IssuedEvent struct {
	TokenName string `json:"token_name"`
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
}

// BurnedEvent carries the amount actually removed after clamping, not the
// requested amount, so replaying consumers reconcile exactly.
type BurnedEvent struct {
	TokenName string `json:"token_name"`
	From      string `json:"from"`
	Amount    uint64 `json:"amount"`
}

type EventPublisher interface {
	PublishIssued(ctx context.Context, caller string, event IssuedEvent) error
	PublishBurned(ctx context.Context, caller string, event BurnedEvent) error
}

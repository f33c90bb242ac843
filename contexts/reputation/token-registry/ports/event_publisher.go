package ports

import "context"

type TokenChangedEvent struct {
	TokenName string `json:"token_name"`
	Owner     string `json:"owner"`
	State     string `json:"state"`
}

type OwnerChangedEvent struct {
	TokenName     string `json:"token_name"`
	PreviousOwner string `json:"previous_owner"`
	NewOwner      string `json:"new_owner"`
}

type TokenStandardChangedEvent struct {
	TokenName string `json:"token_name"`
	CID       string `json:"cid"`
}

type TokenStateChangedEvent struct {
	TokenName string `json:"token_name"`
	State     string `json:"state"`
}

type OracleChangedEvent struct {
	TokenName string `json:"token_name"`
	Oracle    string `json:"oracle"`
}

// EventPublisher publishes registry audit events through the outbox/event bus
// adapter. Exactly one event is published per successful mutation; failed
// operations publish nothing.
type EventPublisher interface {
	PublishTokenChanged(ctx context.Context, caller string, event TokenChangedEvent) error
	PublishOwnerChanged(ctx context.Context, caller string, event OwnerChangedEvent) error
	PublishTokenStandardChanged(ctx context.Context, caller string, event TokenStandardChangedEvent) error
	PublishTokenStateChanged(ctx context.Context, caller string, event TokenStateChangedEvent) error
	PublishOracleAdded(ctx context.Context, caller string, event OracleChangedEvent) error
	PublishOracleRemoved(ctx context.Context, caller string, event OracleChangedEvent) error
}

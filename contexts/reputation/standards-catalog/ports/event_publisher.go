package ports

import "context"

// StandardModifiedEvent records an upsert or a destroy of a named standard.
type StandardModifiedEvent struct {
	Name      string `json:"name"`
	RepAmount int64  `json:"rep_amount"`
	Destroyed bool   `json:"destroyed"`
}

// EventPublisher emits catalog audit events.
type EventPublisher interface {
	PublishStandardModified(ctx context.Context, caller string, event StandardModifiedEvent) error
}

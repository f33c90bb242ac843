package ports

import (
	"context"
	"time"
)

// OutboxMessage is a pending audit envelope persisted next to registry state.
// The payload stays opaque to the worker; the bus adapter decodes it.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, at time.Time) error
}

// BusPublisher hands a pending outbox row to the event bus.
type BusPublisher interface {
	PublishPending(ctx context.Context, message OutboxMessage) error
}

type Clock interface {
	Now() time.Time
}

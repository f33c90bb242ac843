package ports

import (
	"context"
	"time"
)

// OutboxMessage is a pending audit envelope persisted next to balance state.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, at time.Time) error
}

type BusPublisher interface {
	PublishPending(ctx context.Context, message OutboxMessage) error
}

type Clock interface {
	Now() time.Time
}

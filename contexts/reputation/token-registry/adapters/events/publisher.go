package events

import (
	"context"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/token-registry/ports"
	sharedevents "chainreputation/internal/shared/events"

	"github.com/google/uuid"
)

// Sink receives fully built audit envelopes. The in-memory journal, the
// postgres outbox, and the message bus all satisfy it.
type Sink interface {
	Publish(ctx context.Context, event sharedevents.Envelope) error
}

// Publisher turns registry events into canonical audit envelopes.
type Publisher struct {
	source string
	sink   Sink
	logger *slog.Logger
}

func NewPublisher(source string, sink Sink, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{source: source, sink: sink, logger: logger}
}

func (p Publisher) PublishTokenChanged(ctx context.Context, caller string, event ports.TokenChangedEvent) error {
	return p.publish(ctx, "TokenChanged", caller, event.TokenName, event)
}

func (p Publisher) PublishOwnerChanged(ctx context.Context, caller string, event ports.OwnerChangedEvent) error {
	return p.publish(ctx, "OwnerChanged", caller, event.TokenName, event)
}

func (p Publisher) PublishTokenStandardChanged(ctx context.Context, caller string, event ports.TokenStandardChangedEvent) error {
	return p.publish(ctx, "TokenStandardChanged", caller, event.TokenName, event)
}

func (p Publisher) PublishTokenStateChanged(ctx context.Context, caller string, event ports.TokenStateChangedEvent) error {
	return p.publish(ctx, "TokenStateChanged", caller, event.TokenName, event)
}

func (p Publisher) PublishOracleAdded(ctx context.Context, caller string, event ports.OracleChangedEvent) error {
	return p.publish(ctx, "OracleAdded", caller, event.TokenName, event)
}

func (p Publisher) PublishOracleRemoved(ctx context.Context, caller string, event ports.OracleChangedEvent) error {
	return p.publish(ctx, "OracleRemoved", caller, event.TokenName, event)
}

func (p Publisher) publish(ctx context.Context, eventType string, caller string, tokenName string, payload any) error {
	envelope := sharedevents.Envelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  p.source,
		OccurredAtUTC:  time.Now().UTC(),
		Caller:         caller,
		EntityType:     "token",
		EntityID:       tokenName,
		PayloadVersion: 1,
		Payload:        payload,
	}
	if err := p.sink.Publish(ctx, envelope); err != nil {
		return err
	}

	p.logger.Info("registry event published",
		"event", "registry_event_published",
		"module", "reputation/token-registry",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", eventType,
		"token_name", tokenName,
	)
	return nil
}

package events

import (
	"context"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/balance-ledger/ports"
	sharedevents "chainreputation/internal/shared/events"

	"github.com/google/uuid"
)

// Sink receives fully built audit envelopes.
type Sink interface {
	Publish(ctx context.Context, event sharedevents.Envelope) error
}

// Publisher turns ledger events into canonical audit envelopes.
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

func (p Publisher) PublishIssued(ctx context.Context, caller string, event ports.IssuedEvent) error {
	return p.publish(ctx, "Issued", caller, event.TokenName, event)
}

func (p Publisher) PublishBurned(ctx context.Context, caller string, event ports.BurnedEvent) error {
	return p.publish(ctx, "Burned", caller, event.TokenName, event)
}

func (p Publisher) publish(ctx context.Context, eventType string, caller string, tokenName string, payload any) error {
	envelope := sharedevents.Envelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  p.source,
		OccurredAtUTC:  time.Now().UTC(),
		Caller:         caller,
		EntityType:     "balance",
		EntityID:       tokenName,
		PayloadVersion: 1,
		Payload:        payload,
	}
	if err := p.sink.Publish(ctx, envelope); err != nil {
		return err
	}

	p.logger.Info("ledger event published",
		"event", "ledger_event_published",
		"module", "reputation/balance-ledger",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", eventType,
		"token_name", tokenName,
	)
	return nil
}

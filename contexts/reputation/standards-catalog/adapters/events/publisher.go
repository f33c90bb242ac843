package events

import (
	"context"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/standards-catalog/ports"
	sharedevents "chainreputation/internal/shared/events"

	"github.com/google/uuid"
)

// Sink receives fully built audit envelopes.
type Sink interface {
	Publish(ctx context.Context, event sharedevents.Envelope) error
}

// Publisher turns catalog events into canonical audit envelopes.
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

func (p Publisher) PublishStandardModified(ctx context.Context, caller string, event ports.StandardModifiedEvent) error {
	envelope := sharedevents.Envelope{
		EventID:        uuid.NewString(),
		EventType:      "StandardModified",
		SourceService:  p.source,
		OccurredAtUTC:  time.Now().UTC(),
		Caller:         caller,
		EntityType:     "standard",
		EntityID:       event.Name,
		PayloadVersion: 1,
		Payload:        event,
	}
	if err := p.sink.Publish(ctx, envelope); err != nil {
		return err
	}

	p.logger.Info("catalog event published",
		"event", "catalog_event_published",
		"module", "reputation/standards-catalog",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", envelope.EventType,
		"standard_name", event.Name,
	)
	return nil
}

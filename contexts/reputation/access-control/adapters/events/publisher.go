package events

import (
	"context"
	"log/slog"
	"time"

	"chainreputation/contexts/reputation/access-control/ports"
	sharedevents "chainreputation/internal/shared/events"

	"github.com/google/uuid"
)

// Sink receives fully built audit envelopes.
type Sink interface {
	Publish(ctx context.Context, event sharedevents.Envelope) error
}

// Publisher turns access-control events into canonical audit envelopes.
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

func (p Publisher) PublishAdminAdded(ctx context.Context, caller string, event ports.AdminChangedEvent) error {
	return p.publish(ctx, "AdminAdded", caller, "admin", event.Admin, event)
}

func (p Publisher) PublishAdminRemoved(ctx context.Context, caller string, event ports.AdminChangedEvent) error {
	return p.publish(ctx, "AdminRemoved", caller, "admin", event.Admin, event)
}

func (p Publisher) PublishContractAdded(ctx context.Context, caller string, event ports.ContractChangedEvent) error {
	return p.publish(ctx, "ContractAdded", caller, "contract", event.Contract, event)
}

func (p Publisher) PublishContractRemoved(ctx context.Context, caller string, event ports.ContractChangedEvent) error {
	return p.publish(ctx, "ContractRemoved", caller, "contract", event.Contract, event)
}

func (p Publisher) publish(ctx context.Context, eventType string, caller string, entityType string, entityID string, payload any) error {
	envelope := sharedevents.Envelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  p.source,
		OccurredAtUTC:  time.Now().UTC(),
		Caller:         caller,
		EntityType:     entityType,
		EntityID:       entityID,
		PayloadVersion: 1,
		Payload:        payload,
	}
	if err := p.sink.Publish(ctx, envelope); err != nil {
		return err
	}

	p.logger.Info("access event published",
		"event", "access_event_published",
		"module", "reputation/access-control",
		"layer", "adapter",
		"event_id", envelope.EventID,
		"event_type", eventType,
		"entity_id", entityID,
	)
	return nil
}

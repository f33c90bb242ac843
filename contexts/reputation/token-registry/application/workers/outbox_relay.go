package workers

import (
	"context"
	"log/slog"
	"time"

	application "chainreputation/contexts/reputation/token-registry/application"
	"chainreputation/contexts/reputation/token-registry/ports"
)

// OutboxRelay publishes pending registry audit rows to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.BusPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("registry outbox list failed",
			"event", "registry_outbox_list_failed",
			"module", "reputation/token-registry",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		if err := r.Publisher.PublishPending(ctx, row); err != nil {
			logger.Error("registry outbox publish failed",
				"event", "registry_outbox_publish_failed",
				"module", "reputation/token-registry",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			return err
		}
	}
	return nil
}

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"chainreputation/contexts/reputation/token-registry/ports"
)

type fakeOutbox struct {
	pending   []ports.OutboxMessage
	published map[string]time.Time
	listErr   error
}

func (f *fakeOutbox) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit < len(f.pending) {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutbox) MarkOutboxPublished(_ context.Context, outboxID string, at time.Time) error {
	if f.published == nil {
		f.published = map[string]time.Time{}
	}
	f.published[outboxID] = at
	return nil
}

type fakeBus struct {
	sent    []ports.OutboxMessage
	failOn  string
	failErr error
}

func (f *fakeBus) PublishPending(_ context.Context, message ports.OutboxMessage) error {
	if message.OutboxID == f.failOn {
		return f.failErr
	}
	f.sent = append(f.sent, message)
	return nil
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

func TestOutboxRelayPublishesAndMarksPending(t *testing.T) {
	outbox := &fakeOutbox{pending: []ports.OutboxMessage{
		{OutboxID: "row-1", EventType: "TokenChanged", Payload: []byte(`{"token_name":"REP"}`)},
		{OutboxID: "row-2", EventType: "OwnerChanged", Payload: []byte(`{"token_name":"REP"}`)},
	}}
	bus := &fakeBus{}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	relay := OutboxRelay{
		Outbox:    outbox,
		Publisher: bus,
		Clock:     fixedClock{at: now},
		BatchSize: 10,
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	if len(bus.sent) != 2 {
		t.Fatalf("expected 2 published rows, got %d", len(bus.sent))
	}
	if len(outbox.published) != 2 {
		t.Fatalf("expected 2 marked rows, got %d", len(outbox.published))
	}
	if got := outbox.published["row-1"]; !got.Equal(now) {
		t.Fatalf("expected publish time %v, got %v", now, got)
	}
}

func TestOutboxRelayStopsOnPublishFailure(t *testing.T) {
	busErr := errors.New("broker unavailable")
	outbox := &fakeOutbox{pending: []ports.OutboxMessage{
		{OutboxID: "row-1", EventType: "TokenChanged"},
		{OutboxID: "row-2", EventType: "OracleAdded"},
		{OutboxID: "row-3", EventType: "OracleRemoved"},
	}}
	bus := &fakeBus{failOn: "row-2", failErr: busErr}

	relay := OutboxRelay{Outbox: outbox, Publisher: bus, BatchSize: 10}
	if err := relay.RunOnce(context.Background()); !errors.Is(err, busErr) {
		t.Fatalf("expected broker error, got %v", err)
	}

	if len(bus.sent) != 1 {
		t.Fatalf("expected only the first row published, got %d", len(bus.sent))
	}
	if _, marked := outbox.published["row-2"]; marked {
		t.Fatalf("failed row must stay pending")
	}
	if _, marked := outbox.published["row-3"]; marked {
		t.Fatalf("rows after a failure must stay pending")
	}
}

func TestOutboxRelayHonorsBatchSize(t *testing.T) {
	outbox := &fakeOutbox{pending: []ports.OutboxMessage{
		{OutboxID: "row-1"},
		{OutboxID: "row-2"},
		{OutboxID: "row-3"},
	}}
	bus := &fakeBus{}

	relay := OutboxRelay{Outbox: outbox, Publisher: bus, BatchSize: 2}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(bus.sent) != 2 {
		t.Fatalf("expected batch of 2, got %d", len(bus.sent))
	}
}

package events

import (
	"context"
	"sync"
)

// Journal is an in-process append-only event sink. In-memory module wiring
// uses it as the publisher so callers and tests can replay exactly what a
// sequence of operations emitted.
type Journal struct {
	mu      sync.RWMutex
	entries []Envelope
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Publish(_ context.Context, event Envelope) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, event)
	return nil
}

// Entries returns a copy of every recorded event in publish order.
func (j *Journal) Entries() []Envelope {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Envelope, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

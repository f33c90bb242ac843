package events

import "time"

// Envelope is the shared audit-event shape used in ChainReputation.
// Consumers replay ledger history from this stream, so field order is frozen;
// align any change with the versioned contract under contracts/gen/events.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	Caller         string    `json:"caller"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}

package outbox

// Outbox row persisted inside the same DB transaction as ledger mutations.
// Worker relay reads pending rows and publishes to the event bus.
type Message struct {
	ID         string
	EventType  string
	Payload    []byte
	Status     string // pending, published, failed
	RetryCount int
}

const (
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

package store

import "github.com/tailored-agentic-units/recordstore/observability"

// Store event types emitted on mutation.
const (
	EventSaved     observability.EventType = "store.record.saved"
	EventDuplicate observability.EventType = "store.record.duplicate"
	EventDeleted   observability.EventType = "store.record.deleted"
)

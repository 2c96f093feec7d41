package models

import "time"

// SyncLogEntry is one row of the append-only tombstone log. Entries are never
// updated or deleted by the client; an external reconciliation worker consumes
// them.
type SyncLogEntry struct {
	ID         int64
	EntityType string
	EntityID   string
	Action     string
	CreatedAt  time.Time
}

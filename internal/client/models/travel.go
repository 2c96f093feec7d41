// Package models defines client-side data models for the travel journal.
package models

import "time"

// SyncStatus marks whether a locally stored row has been propagated to the
// remote store. Remote rows carry no status: they are synced by definition.
type SyncStatus string

const (
	SyncStatusSynced        SyncStatus = "synced"
	SyncStatusPendingCreate SyncStatus = "pending_create"
	SyncStatusPendingUpdate SyncStatus = "pending_update"
	// SyncStatusPendingDelete exists for completeness; deletions are recorded
	// in the sync log instead of this status (the row is removed outright).
	SyncStatusPendingDelete SyncStatus = "pending_delete"
)

// Travel is a journal record owned by exactly one user. ID is assigned at
// creation and never changes.
type Travel struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	User        User
	Latitude    float64
	Longitude   float64
	PhotoURL    string

	// SyncStatus is local bookkeeping only. It is empty on records that came
	// from the remote store.
	SyncStatus SyncStatus
}

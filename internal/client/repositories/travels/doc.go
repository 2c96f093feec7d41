// Package travels provides the client-side persistence layer for travel
// records.
//
// # Overview
//
// The package defines the Repository interface — the six-operation
// record-store contract shared by the local store, the remote store, and the
// hybrid store — and a SQLite-backed implementation (SQLiteRepository) that
// is the durable, always-available local store.
//
// # Sync bookkeeping
//
// Every locally stored row carries a sync_status column. Save tags new rows
// pending_create; Update flips synced rows to pending_update and leaves
// already-pending rows unchanged, collapsing repeated un-pushed edits into a
// single pending unit. Delete appends a tombstone to sync_log and removes the
// row; the log is append-only and consumed by an external reconciliation
// worker.
//
// # Local prerequisite
//
// Save runs in one transaction that first ensures the owning user row exists
// (inserting it as pending_create if absent) and then inserts the travel. A
// travel row never references a user row that is missing locally.
package travels

// Package synclog provides the append-only tombstone log recording
// destructive actions that still await upstream propagation.
package synclog

import (
	"context"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
)

// Repository describes the tombstone log. Append is the only write; the
// client never updates or deletes log rows.
type Repository interface {
	Append(ctx context.Context, entityType, entityID, action string) error
	GetAll(ctx context.Context) ([]models.SyncLogEntry, error)
}

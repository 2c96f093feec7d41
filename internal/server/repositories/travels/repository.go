// Package travels declares the server-side repository contract for travel
// records.
package travels

import (
	"context"

	"github.com/dmitrijs2005/travelkeeper/internal/server/models"
)

type Repository interface {
	// CreateOrUpdate inserts the travel or, when a row with the same
	// client-assigned id exists, overwrites its mutable fields. Pushes of
	// offline-created records may be retried, so the operation is idempotent.
	CreateOrUpdate(ctx context.Context, travel *models.Travel) error

	// GetByID returns a single travel with the owner's name joined in,
	// or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Travel, error)

	// SelectAll returns every travel, newest date first.
	SelectAll(ctx context.Context) ([]models.Travel, error)

	// SelectByUser returns the travels owned by userID, newest date first.
	SelectByUser(ctx context.Context, userID string) ([]models.Travel, error)

	// Update overwrites the mutable fields of a travel owned by userID.
	// Returns common.ErrorNotFound when no such row exists.
	Update(ctx context.Context, travel *models.Travel, userID string) error

	// Delete removes a travel owned by userID. Returns common.ErrorNotFound
	// when no such row exists.
	Delete(ctx context.Context, id string, userID string) error
}

package travels

import (
	"context"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
)

// Repository is the record-store capability implemented identically by the
// local SQLite store, the remote HTTP store, and the hybrid store that
// composes them.
type Repository interface {
	// Save inserts a new travel. A local implementation must ensure the
	// referenced user row exists before inserting.
	Save(ctx context.Context, travel *models.Travel) error

	// FindByID returns a single travel, joined with its user's display name
	// where the implementation stores one, or common.ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.Travel, error)

	// FindAll returns every travel the store holds.
	FindAll(ctx context.Context) ([]models.Travel, error)

	// FindByUserID returns every travel owned by the given user.
	FindByUserID(ctx context.Context, userID string) ([]models.Travel, error)

	// Update overwrites the mutable fields of the travel with that id.
	// Updating an id with no matching row is not an error.
	Update(ctx context.Context, travel *models.Travel) error

	// Delete removes a travel by id. A local implementation must record the
	// deletion intent whether or not a row with that id is present.
	Delete(ctx context.Context, id string) error
}

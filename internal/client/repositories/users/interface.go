// Package users mirrors user rows into the local SQLite database so travel
// rows always have a valid local foreign key. The client does not own user
// lifecycle; rows inserted here are stubs awaiting reconciliation.
package users

import (
	"context"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
)

// Repository describes the local user mirror.
type Repository interface {
	// EnsureExists inserts the user as pending_create if no row with that id
	// exists yet. Existing rows are left untouched.
	EnsureExists(ctx context.Context, user *models.User) error

	// GetByID returns the locally mirrored user or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

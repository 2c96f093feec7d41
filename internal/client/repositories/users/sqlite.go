package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/common"
	"github.com/dmitrijs2005/travelkeeper/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx), so it can run inside the travel-save transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// EnsureExists inserts the user with status pending_create unless a row with
// that id already exists.
func (r *SQLiteRepository) EnsureExists(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, latitude, longitude, sync_status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Latitude, u.Longitude, models.SyncStatusPendingCreate)
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// GetByID returns the mirrored user row.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, latitude, longitude, sync_status FROM users WHERE id = ?`
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.SyncStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

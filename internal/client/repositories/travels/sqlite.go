package travels

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/synclog"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/travelkeeper/internal/common"
	"github.com/dmitrijs2005/travelkeeper/internal/dbx"
)

// SQLiteRepository implements Repository over the shared local *sql.DB.
// All engine-level failures surface as common.ErrLocalOperationFailed.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to the given database handle.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func localErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrLocalOperationFailed, op, err)
}

// Save inserts the travel with sync status pending_create. The referenced
// user row is inserted first (also pending_create) if it is absent; both
// writes happen in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, t *models.Travel) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := users.NewSQLiteRepository(tx).EnsureExists(ctx, &t.User); err != nil {
			return err
		}

		query := `INSERT INTO travels (id, title, description, date, user_id, latitude, longitude, photo_url, sync_status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			t.ID, t.Title, t.Description, t.Date.UTC().Format(time.RFC3339), t.User.ID,
			t.Latitude, t.Longitude, t.PhotoURL, models.SyncStatusPendingCreate)
		return err
	})
	if err != nil {
		return localErr("insert travel", err)
	}
	return nil
}

// FindByID returns the travel joined with the local user's display name.
func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*models.Travel, error) {
	query := `SELECT t.id, t.title, t.description, t.date, t.user_id, COALESCE(u.name, ''),
			t.latitude, t.longitude, t.photo_url, t.sync_status
		FROM travels t LEFT JOIN users u ON t.user_id = u.id
		WHERE t.id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTravel(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, localErr("select travel", err)
	}
	return t, nil
}

// FindAll returns every local travel.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]models.Travel, error) {
	query := `SELECT t.id, t.title, t.description, t.date, t.user_id, COALESCE(u.name, ''),
			t.latitude, t.longitude, t.photo_url, t.sync_status
		FROM travels t LEFT JOIN users u ON t.user_id = u.id`
	return r.queryTravels(ctx, query)
}

// FindByUserID returns every local travel owned by userID, including rows
// still pending a push.
func (r *SQLiteRepository) FindByUserID(ctx context.Context, userID string) ([]models.Travel, error) {
	query := `SELECT t.id, t.title, t.description, t.date, t.user_id, COALESCE(u.name, ''),
			t.latitude, t.longitude, t.photo_url, t.sync_status
		FROM travels t LEFT JOIN users u ON t.user_id = u.id
		WHERE t.user_id = ?`
	return r.queryTravels(ctx, query, userID)
}

// Update overwrites the mutable fields. A row whose status is synced becomes
// pending_update; a row already pending keeps its status, so repeated edits
// before a push collapse into one pending unit. An id with no local row is
// not an error: the record may exist only remotely.
func (r *SQLiteRepository) Update(ctx context.Context, t *models.Travel) error {
	query := `UPDATE travels SET title = ?, description = ?, date = ?, latitude = ?, longitude = ?, photo_url = ?,
			sync_status = CASE WHEN sync_status = 'synced' THEN 'pending_update' ELSE sync_status END
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Date.UTC().Format(time.RFC3339),
		t.Latitude, t.Longitude, t.PhotoURL, t.ID)
	if err != nil {
		return localErr("update travel", err)
	}
	return nil
}

// Delete appends a tombstone to the sync log and removes the row, in one
// transaction. The tombstone is written even when no local row exists, so a
// deletion of a record known only remotely is still recorded for
// reconciliation. The tombstone is the only record of the deletion; there is
// no pending_delete row left behind.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := synclog.NewSQLiteRepository(tx).Append(ctx, common.SyncEntityTravel, id, common.SyncActionDelete); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `DELETE FROM travels WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return localErr("delete travel", err)
	}
	return nil
}

func (r *SQLiteRepository) queryTravels(ctx context.Context, query string, args ...any) ([]models.Travel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, localErr("select travels", err)
	}
	defer rows.Close()

	var result []models.Travel
	for rows.Next() {
		t, err := scanTravel(rows.Scan)
		if err != nil {
			return nil, localErr("scan travel", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, localErr("iterate travels", err)
	}
	return result, nil
}

func scanTravel(scan func(dest ...any) error) (*models.Travel, error) {
	var t models.Travel
	var date string
	if err := scan(&t.ID, &t.Title, &t.Description, &date, &t.User.ID, &t.User.Name,
		&t.Latitude, &t.Longitude, &t.PhotoURL, &t.SyncStatus); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	t.Date = parsed
	return &t, nil
}

package synclog

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx), so appends can share the deleting transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Append writes one log entry.
func (r *SQLiteRepository) Append(ctx context.Context, entityType, entityID, action string) error {
	query := `INSERT INTO sync_log (entity_type, entity_id, action) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, entityType, entityID, action); err != nil {
		return fmt.Errorf("failed to append sync log entry: %w", err)
	}
	return nil
}

// GetAll returns the whole log in insertion order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.SyncLogEntry, error) {
	query := `SELECT id, entity_type, entity_id, action, created_at FROM sync_log ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select sync log: %w", err)
	}
	defer rows.Close()

	var result []models.SyncLogEntry
	for rows.Next() {
		var item models.SyncLogEntry
		var createdAt string
		if err := rows.Scan(&item.ID, &item.EntityType, &item.EntityID, &item.Action, &createdAt); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sync log timestamp: %w", err)
		}
		item.CreatedAt = ts
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

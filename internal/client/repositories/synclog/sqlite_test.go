package synclog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sync_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entity_type TEXT NOT NULL,
  entity_id TEXT NOT NULL,
  action TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);
`)
	require.NoError(t, err)

	return db
}

func TestAppendAndGetAll_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, "travel", "t1", "delete"))
	require.NoError(t, r.Append(ctx, "travel", "t2", "delete"))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "t1", got[0].EntityID)
	assert.Equal(t, "t2", got[1].EntityID)
	assert.Equal(t, "travel", got[0].EntityType)
	assert.Equal(t, "delete", got[0].Action)
	assert.False(t, got[0].CreatedAt.IsZero())
	assert.True(t, got[0].ID < got[1].ID)
}

func TestGetAll_MalformedTimestamp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO sync_log (entity_type, entity_id, action, created_at)
		VALUES ('travel', 't1', 'delete', 'yesterday')`)
	require.NoError(t, err)

	_, err = r.GetAll(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp")
}

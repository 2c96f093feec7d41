// Package client contains the local persistence bootstrap for the
// TravelKeeper CLI: opening the SQLite database, applying the embedded goose
// migrations, and bundling the repositories the services are wired with.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/travelkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/synclog"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/travels"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/users"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local stores over one shared database handle.
type Repositories struct {
	Travels travels.Repository
	Users   users.Repository
	SyncLog synclog.Repository
	DB      *sql.DB
}

// RunMigrations applies the embedded migrations. Safe to call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn, runs
// migrations and returns the repository bundle.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := &Repositories{
		Travels: travels.NewSQLiteRepository(db),
		Users:   users.NewSQLiteRepository(db),
		SyncLog: synclog.NewSQLiteRepository(db),
		DB:      db,
	}
	return repos, nil
}

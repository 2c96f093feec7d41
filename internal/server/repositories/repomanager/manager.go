package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/travelkeeper/internal/dbx"
	"github.com/dmitrijs2005/travelkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/travelkeeper/internal/server/repositories/travels"
	"github.com/dmitrijs2005/travelkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Travels(db dbx.DBTX) travels.Repository
}

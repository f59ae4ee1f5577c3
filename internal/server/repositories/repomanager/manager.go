package repomanager

import (
	"context"
	"database/sql"

	"github.com/lmartinezr/authcore/internal/dbx"
	"github.com/lmartinezr/authcore/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations for a storage backend
// and exposes a schema migration hook. The in-memory backend treats
// RunMigrations as a no-op.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

package repomanager

import (
	"context"
	"database/sql"

	"github.com/lmartinezr/authcore/internal/dbx"
	"github.com/lmartinezr/authcore/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends the reference in-memory repositories. The
// users repository is created once so that records survive across calls.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

// Users ignores the db argument; the in-memory store needs no connection.
func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

package users

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/lmartinezr/authcore/internal/common"
	"github.com/lmartinezr/authcore/internal/server/models"
)

// InMemoryRepository keeps user records in a process-local map guarded by a
// RWMutex. IDs are assigned monotonically starting from 1. State lives for
// the duration of the process; there is no durability guarantee.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.User
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byName: make(map[string]*models.User),
		nextID: 1,
	}
}

// Create stores the record under a write lock so that two concurrent inserts
// of the same username cannot both succeed.
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = strconv.FormatInt(r.nextID, 10)
	stored.CreatedAt = time.Now()
	r.nextID++
	r.byName[stored.UserName] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	result := *user
	return &result, nil
}

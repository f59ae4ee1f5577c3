// Package users contains the credential store: repositories holding user
// records keyed by username.
package users

import (
	"context"

	"github.com/lmartinezr/authcore/internal/server/models"
)

// Repository is the credential store contract. Create assigns the record's
// ID and fails with common.ErrorAlreadyExists when the username is taken;
// the check-and-insert is atomic with respect to concurrent calls.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

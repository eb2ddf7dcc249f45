// Package users stores registered accounts keyed by normalized email.
package users

import (
	"context"

	"github.com/dmitrijs2005/feelflow/internal/server/models"
)

// Repository is the user store. Create must check for an existing email
// and insert in one atomic step and report duplicates as
// common.ErrorAlreadyExists. Lookups report absence as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

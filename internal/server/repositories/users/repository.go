// Package users provides the PostgreSQL-backed repository for account
// persistence.
package users

import (
	"context"

	"github.com/catcurious/catcurious/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateCredentials(ctx context.Context, username, salt, passwordHash string) error
	Delete(ctx context.Context, username string) error
}

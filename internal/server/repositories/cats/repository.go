// Package cats provides the PostgreSQL-backed repository for cat records
// and their soft-delete lifecycle.
package cats

import (
	"context"

	"github.com/catcurious/catcurious/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, cat *models.Cat) (*models.Cat, error)
	GetByID(ctx context.Context, id int64) (*models.Cat, error)
	GetByName(ctx context.Context, name string) (*models.Cat, error)
	GetDeletedForUpdate(ctx context.Context, id int64) (bool, error)
	MarkDeleted(ctx context.Context, id int64) error
	Reset(ctx context.Context) error
}

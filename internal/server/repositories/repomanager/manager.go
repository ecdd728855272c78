// Package repomanager wires repository constructors to a database handle
// and exposes a schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/catcurious/catcurious/internal/dbx"
	"github.com/catcurious/catcurious/internal/server/repositories/cats"
	"github.com/catcurious/catcurious/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, which may be the
// shared *sql.DB or a *sql.Tx when the caller needs transactional scope.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cats(db dbx.DBTX) cats.Repository
}

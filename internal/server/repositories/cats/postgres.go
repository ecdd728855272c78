package cats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/catcurious/catcurious/internal/common"
	"github.com/catcurious/catcurious/internal/dbx"
	"github.com/catcurious/catcurious/internal/server/models"
)

// PostgresRepository implements cat storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a new cat row (deleted defaults to false) and returns the
// cat with its assigned ID. A name collision among live rows is reported as
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, cat *models.Cat) (*models.Cat, error) {
	query :=
		`INSERT INTO cats (name, breed, age, weight)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		cat.Name, cat.Breed, cat.Age, cat.Weight).Scan(&cat.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("cat %q: %w", cat.Name, common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cat, nil
}

// GetByID returns the cat row for id including its deleted flag, or
// common.ErrorNotFound when no such row exists. The caller decides how to
// treat soft-deleted rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Cat, error) {
	query :=
		`SELECT id, name, breed, age, weight, deleted FROM cats
		 WHERE id = $1
		 `

	cat := &models.Cat{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cat.ID, &cat.Name, &cat.Breed, &cat.Age, &cat.Weight, &cat.Deleted)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cat, nil
}

// GetByName returns the cat row for name including its deleted flag, or
// common.ErrorNotFound when no such row exists. The unique index on name
// only covers live rows, so a name can match one live row plus any number
// of soft-deleted ones; the live row wins, newest deleted row otherwise.
func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Cat, error) {
	query :=
		`SELECT id, name, breed, age, weight, deleted FROM cats
		 WHERE name = $1
		 ORDER BY deleted, id DESC
		 LIMIT 1
		 `

	cat := &models.Cat{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&cat.ID, &cat.Name, &cat.Breed, &cat.Age, &cat.Weight, &cat.Deleted)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cat, nil
}

// GetDeletedForUpdate reads the deleted flag for id and locks the row for
// the duration of the surrounding transaction, so a concurrent delete of
// the same id blocks until this transaction finishes. Returns
// common.ErrorNotFound when no such row exists.
func (r *PostgresRepository) GetDeletedForUpdate(ctx context.Context, id int64) (bool, error) {
	query :=
		`SELECT deleted FROM cats
		 WHERE id = $1
		 FOR UPDATE
		 `

	var deleted bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&deleted)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return deleted, nil
}

// MarkDeleted flips the deleted flag for a live row. Zero rows affected
// means the row was already soft-deleted.
func (r *PostgresRepository) MarkDeleted(ctx context.Context, id int64) error {
	query :=
		`UPDATE cats SET deleted = TRUE
		 WHERE id = $1 AND NOT deleted
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorAlreadyDeleted
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Reset empties the cats table and restarts id assignment. This is the
// administrative bulk reset, not a soft delete.
func (r *PostgresRepository) Reset(ctx context.Context) error {
	query := `TRUNCATE TABLE cats RESTART IDENTITY`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

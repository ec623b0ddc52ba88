package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PgxPool is the subset of *pgxpool.Pool the repositories rely on.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool PgxPool
}

// queryRow is a helper method to execute a query that returns a single row
func (r *BaseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return r.Pool.QueryRow(ctx, sql, args...)
}

// query is a helper method to execute a query that returns multiple rows
func (r *BaseRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return r.Pool.Query(ctx, sql, args...)
}

// exec is a helper method to execute a query that doesn't return rows
func (r *BaseRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return r.Pool.Exec(ctx, sql, args...)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

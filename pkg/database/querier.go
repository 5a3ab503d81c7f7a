package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// ErrNoRows is returned by Get when the statement produced no row.
var ErrNoRows = errors.New("database: no rows in result set")

// WriteResult describes the outcome of an INSERT, UPDATE or DELETE.
// InsertID is only set by Insert.
type WriteResult struct {
	AffectedRows int64
	InsertID     *int64
}

// Querier executes one parameterized statement per call. Statements use
// positional placeholders ($1..$n); arguments are always bound by the driver.
type Querier interface {
	Select(ctx context.Context, dst any, sql string, args ...any) error
	Get(ctx context.Context, dst any, sql string, args ...any) error
	Exec(ctx context.Context, sql string, args ...any) (WriteResult, error)
	Insert(ctx context.Context, sql string, args ...any) (WriteResult, error)
	Ping(ctx context.Context) error
}

// Pool is the subset of *pgxpool.Pool the querier needs.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type pgxQuerier struct {
	pool Pool
}

func NewQuerier(pool Pool) Querier {
	return &pgxQuerier{pool: pool}
}

func (q *pgxQuerier) Select(ctx context.Context, dst any, sql string, args ...any) error {
	if err := pgxscan.Select(ctx, q.pool, dst, sql, args...); err != nil {
		return fmt.Errorf("database: select: %w", err)
	}
	return nil
}

func (q *pgxQuerier) Get(ctx context.Context, dst any, sql string, args ...any) error {
	if err := pgxscan.Get(ctx, q.pool, dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return ErrNoRows
		}
		return fmt.Errorf("database: get: %w", err)
	}
	return nil
}

func (q *pgxQuerier) Exec(ctx context.Context, sql string, args ...any) (WriteResult, error) {
	tag, err := q.pool.Exec(ctx, sql, args...)
	if err != nil {
		return WriteResult{}, fmt.Errorf("database: exec: %w", err)
	}
	return WriteResult{AffectedRows: tag.RowsAffected()}, nil
}

// Insert runs an INSERT ending in "RETURNING id" and reports the generated key.
func (q *pgxQuerier) Insert(ctx context.Context, sql string, args ...any) (WriteResult, error) {
	var id int64
	if err := q.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return WriteResult{}, fmt.Errorf("database: insert: %w", err)
	}
	return WriteResult{AffectedRows: 1, InsertID: &id}, nil
}

func (q *pgxQuerier) Ping(ctx context.Context) error {
	return q.pool.Ping(ctx)
}

// IsUniqueViolation reports whether err was caused by a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ConstraintName returns the violated constraint, or "" for non-PostgreSQL errors.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

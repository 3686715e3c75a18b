package kvrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// sqlRepo keeps values in a single table. The statements run unchanged on
// sqlite and postgres.
type sqlRepo struct{ db *sql.DB }

const createTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// NewSQL creates the backing table if needed.
func NewSQL(ctx context.Context, db *sql.DB) (Repo, error) {
	r := &sqlRepo{db: db}
	if err := r.migrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *sqlRepo) migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createTable)
	return err
}

func (r *sqlRepo) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM kv_store WHERE key = $1`
	var v string
	err := r.db.QueryRowContext(ctx, q, key).Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows), isUndefinedTable(err):
		return "", ErrNotFound
	case err != nil:
		return "", err
	}
	return v, nil
}

func (r *sqlRepo) Set(ctx context.Context, key, value string) error {
	err := r.upsert(ctx, key, value)
	if isUndefinedTable(err) {
		// table dropped under us
		if err = r.migrate(ctx); err != nil {
			return err
		}
		err = r.upsert(ctx, key, value)
	}
	return err
}

func (r *sqlRepo) upsert(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO kv_store (key, value, updated_at)
VALUES ($1, $2, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable
}

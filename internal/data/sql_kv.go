package data

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

type sqlStatements struct {
	create string
	get    string
	set    string
	delete string
}

var statements = map[Dialect]sqlStatements{
	Postgres: {
		create: `CREATE TABLE IF NOT EXISTS kv_items (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		get: `SELECT value FROM kv_items WHERE key = $1`,
		set: `INSERT INTO kv_items (key, value) VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value, updated_at = now()`,
		delete: `DELETE FROM kv_items WHERE key = $1`,
	},
	SQLite: {
		create: `CREATE TABLE IF NOT EXISTS kv_items (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		get: `SELECT value FROM kv_items WHERE key = ?`,
		set: `INSERT INTO kv_items (key, value) VALUES (?, ?)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		delete: `DELETE FROM kv_items WHERE key = ?`,
	},
}

// SQLKV keeps every key as one row of the kv_items table.
type SQLKV struct {
	DB    *sql.DB
	stmts sqlStatements
}

func NewSQLKV(db *sql.DB, dialect Dialect) *SQLKV {
	return &SQLKV{DB: db, stmts: statements[dialect]}
}

// Migrate creates the kv_items table if it does not exist yet.
func (s *SQLKV) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, s.stmts.create)
	return errors.Wrap(err, "create kv_items")
}

func (s *SQLKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, s.stmts.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "get %s", key)
	}
	return []byte(value), true, nil
}

func (s *SQLKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx, s.stmts.set, key, string(value))
	return errors.Wrapf(err, "set %s", key)
}

func (s *SQLKV) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, s.stmts.delete, key)
	return errors.Wrapf(err, "delete %s", key)
}

func (s *SQLKV) Close() error {
	return s.DB.Close()
}

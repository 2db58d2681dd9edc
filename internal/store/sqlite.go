package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saadjs/dhyan-cli/internal/app"
	"github.com/saadjs/dhyan-cli/internal/db"
)

type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates the database directory if needed and applies
// migrations before returning.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := app.EnsureDBDir(path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return NewSQLite(sqldb), nil
}

// NewSQLite wraps an already migrated handle. Close closes sqldb.
func NewSQLite(sqldb *sql.DB) *SQLite {
	return &SQLite{db: sqldb}
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO kv_store(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(value))
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

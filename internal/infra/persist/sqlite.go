package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// SQLite driver.
	_ "github.com/mattn/go-sqlite3"
)

// SQLite stores items in a SQLite database file.
type SQLite struct {
	db *sql.DB
}

var _ Storage = &SQLite{}

// OpenSQLite opens database at path and ensures items table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS items (
		key text not null primary key,
		value blob not null
	)`); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create items table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// GetItem returns stored value.
func (s *SQLite) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, `SELECT value FROM items WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("select item %s: %w", key, err)
	}

	return value, true, nil
}

// SetItem stores value.
func (s *SQLite) SetItem(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO items (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	); err != nil {
		return fmt.Errorf("upsert item %s: %w", key, err)
	}

	return nil
}

// RemoveItem deletes value.
func (s *SQLite) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete item %s: %w", key, err)
	}

	return nil
}

// Close closes database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

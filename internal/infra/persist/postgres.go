package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores items in a PostgreSQL table.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Storage = &Postgres{}

// OpenPostgres connects to database and ensures items table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS todomvc_items (
		key text PRIMARY KEY,
		value bytea NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`); err != nil {
		pool.Close()

		return nil, fmt.Errorf("create items table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// GetItem returns stored value.
func (p *Postgres) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := p.pool.QueryRow(ctx, `SELECT value FROM todomvc_items WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("select item %s: %w", key, err)
	}

	return value, true, nil
}

// SetItem stores value.
func (p *Postgres) SetItem(ctx context.Context, key string, value []byte) error {
	if _, err := p.pool.Exec(ctx,
		`INSERT INTO todomvc_items (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	); err != nil {
		return fmt.Errorf("upsert item %s: %w", key, err)
	}

	return nil
}

// RemoveItem deletes value.
func (p *Postgres) RemoveItem(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM todomvc_items WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete item %s: %w", key, err)
	}

	return nil
}

// Close closes connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

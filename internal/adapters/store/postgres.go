package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

var _ ports.DocumentBackend = (*PostgresBackend)(nil)

const (
	postgresDriver = "pgx"
	postgresSchema = `CREATE TABLE IF NOT EXISTS documents (
	key TEXT PRIMARY KEY,
	payload JSONB NOT NULL
)`
)

// PostgresBackend stores documents as JSONB rows.
type PostgresBackend struct {
	sqlBackend
}

// NewPostgresBackend connects to dsn, verifies the connection and ensures the
// documents table exists.
func NewPostgresBackend(ctx context.Context, dsn string) (*PostgresBackend, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres store: dsn is required")
	}
	db, err := sql.Open(postgresDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres store: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres store: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres store: create documents table: %w", err)
	}

	return &PostgresBackend{sqlBackend{
		db:        db,
		name:      "store.postgres",
		loadQuery: `SELECT payload::text FROM documents WHERE key = $1`,
		saveQuery: `INSERT INTO documents (key, payload) VALUES ($1, $2::jsonb)
			ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload`,
	}}, nil
}

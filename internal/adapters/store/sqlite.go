package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

var _ ports.DocumentBackend = (*SQLiteBackend)(nil)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	key TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

// SQLiteBackend stores documents in a local SQLite database file.
type SQLiteBackend struct {
	sqlBackend
}

// NewSQLiteBackend opens (creating if needed) the database at path and
// ensures the documents table exists.
func NewSQLiteBackend(ctx context.Context, path string) (*SQLiteBackend, error) {
	if path == "" {
		path = "roster.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite store: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open %s: %w", path, err)
	}
	// One writer at a time; the repository already serializes access.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: create documents table: %w", err)
	}

	return &SQLiteBackend{sqlBackend{
		db:        db,
		name:      "store.sqlite",
		loadQuery: `SELECT payload FROM documents WHERE key = ?`,
		saveQuery: `INSERT INTO documents (key, payload) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
	}}, nil
}

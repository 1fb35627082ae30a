package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
)

// sqlBackend is the database/sql half shared by the SQLite and Postgres
// backends. Both keep one row per key in a "documents" table; only the
// dialect-specific statements differ.
type sqlBackend struct {
	db        *sql.DB
	name      string
	loadQuery string
	saveQuery string
}

func (b *sqlBackend) Name() string { return b.name }

func (b *sqlBackend) HealthCheck(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", b.name, err)
	}
	return nil
}

func (b *sqlBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRowContext(ctx, b.loadQuery, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: select %q: %w", b.name, key, err)
	}
	return payload, nil
}

func (b *sqlBackend) Save(ctx context.Context, key string, data []byte) error {
	if _, err := b.db.ExecContext(ctx, b.saveQuery, key, string(data)); err != nil {
		return fmt.Errorf("%s: upsert %q: %w", b.name, key, err)
	}
	return nil
}

// Close releases the connection pool.
func (b *sqlBackend) Close() error {
	return b.db.Close()
}

package store

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// OpenBackend constructs the backend selected by cfg.Driver. Backends that
// hold connections also implement io.Closer.
func OpenBackend(ctx context.Context, cfg config.StoreConfig) (ports.DocumentBackend, error) {
	var (
		backend ports.DocumentBackend
		err     error
	)

	switch cfg.Driver {
	case "memory":
		return NewMemoryBackend(), nil
	case "file":
		var b *FileBackend
		b, err = NewFileBackend(cfg.File.Dir)
		backend = b
	case "sqlite":
		var b *SQLiteBackend
		b, err = NewSQLiteBackend(ctx, cfg.SQLite.Path)
		backend = b
	case "postgres":
		var b *PostgresBackend
		b, err = NewPostgresBackend(ctx, cfg.Postgres.DSN)
		backend = b
	case "s3":
		var b *S3Backend
		b, err = NewS3Backend(ctx, S3Options{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			PathStyle:       cfg.S3.PathStyle,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		backend = b
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	if err != nil {
		return nil, err
	}
	return backend, nil
}

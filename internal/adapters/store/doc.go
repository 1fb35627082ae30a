// Package store implements [ports.RosterRepository] on top of a pluggable
// [ports.DocumentBackend].
//
// All roster data lives in one JSON document stored under a single key
// (DefaultKey unless configured otherwise):
//
//	{"departments":[{"id":"d1","name":"Personal Banking"}, ...],
//	 "employees":[{"id":"…","firstName":"…","lastName":"…","departmentId":"d1"}]}
//
// Every mutation rewrites the whole document. A missing or unparsable
// document is replaced with the default seed (three departments, no
// employees); parse failures are logged as warnings and never surface to
// callers. Backend I/O failures are returned wrapped in domain.ErrUnavailable.
//
// Backends:
//
//   - MemoryBackend: process-local map, used by tests and the "memory" driver.
//   - FileBackend: one <key>.json file per key, written atomically.
//   - SQLiteBackend: modernc.org/sqlite, table documents(key, payload).
//   - PostgresBackend: pgx stdlib driver, table documents(key, payload JSONB).
//   - S3Backend: aws-sdk-go-v2, one object per key in a bucket.
package store

// Package appctx is the per-request unit of work behind the roster services.
//
// A RequestContext memoizes reads for the life of one request (the
// department list is fetched once even when the form is rendered and then
// validated) and queues write actions that Commit runs with rollback:
//
//	rc := appctx.FromContext(ctx)
//	depts, err := departments.Get(rc)
//	err = rc.AddAction(saveEmployee)
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
)

var (
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")
	ErrNilAction        = errors.New("appctx: nil action")
	// ErrTypeMismatch means one cache key was read as two different types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext is a context.Context with a read cache and a write queue.
// Only the request goroutine touches the cache; the queue has its own lock.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry

	queueMu   sync.Mutex
	staged    []domain.Action
	committed bool
}

type cacheEntry struct {
	value any
	err   error
}

type contextKey struct{}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx. When none is
// present (CLI calls, tests, background jobs) a fresh one wrapping ctx is
// returned, so callers never need a nil check.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(contextKey{}).(*RequestContext); ok && rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Errors are cached too, so a failing fetch is not
// retried within the same request.
//
// The same key must always be used with the same type T; otherwise
// ErrTypeMismatch is returned. DataProvider prevents this by binding the
// key and type together.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Invalidate drops the cached entry for key so the next GetOrFetch fetches
// again. Services call it after a committed write changes what key holds.
func (rc *RequestContext) Invalidate(key string) {
	delete(rc.cache, key)
}

// DataProvider binds a cache key and fetch function for one data type.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Invalidate drops the provider's cached value from rc.
func (p *DataProvider[T]) Invalidate(rc *RequestContext) {
	rc.Invalidate(p.key)
}

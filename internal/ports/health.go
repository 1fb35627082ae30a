package ports

import "context"

// HealthChecker is a dependency the readiness probe can ask about, such as
// the document store backend.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "store.sqlite".
	Name() string
	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}

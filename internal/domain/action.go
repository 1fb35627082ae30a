package domain

import "context"

// Action represents a single executable operation with rollback capability.
//
// Action is defined in the domain layer so that the request context in the
// application layer and the adapters that implement writes can share it
// without importing each other.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "create employee Amanda Singh").
	Description() string
}

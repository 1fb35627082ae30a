package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
)

// AddAction stages action for Commit. It is safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.staged = append(rc.staged, action)
	return nil
}

// Committed reports whether Commit has run.
func (rc *RequestContext) Committed() bool {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return rc.committed
}

// Pending is the number of staged actions Commit has not taken yet.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.staged)
}

// Commit runs the staged actions in the order they were added. On the first
// failure the actions that already ran are rolled back newest first and the
// failure is returned; rollback errors are logged, not returned.
//
// A RequestContext commits once. Later calls, and later AddAction calls,
// return ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	staged, err := rc.take()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With(slog.Int("staged", len(staged)))
	for i, action := range staged {
		logger.DebugContext(ctx, "executing staged action",
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)
		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged action failed, rolling back",
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			undo(ctx, logger, staged[:i])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}
	return nil
}

// take marks rc committed and hands over the queue.
func (rc *RequestContext) take() ([]domain.Action, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	return rc.staged, nil
}

// undo rolls back done newest first and keeps going past failures.
func undo(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			continue
		}
		logger.WarnContext(ctx, "rolled back staged action",
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)
	}
}

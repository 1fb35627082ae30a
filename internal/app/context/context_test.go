package appctx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
)

// testAction records calls and optionally fails.
type testAction struct {
	desc        string
	executed    bool
	rolledBack  bool
	executeErr  error
	rollbackErr error
	order       *[]string
}

func (a *testAction) Execute(context.Context) error {
	if a.executeErr != nil {
		return a.executeErr
	}
	a.executed = true
	if a.order != nil {
		*a.order = append(*a.order, "execute:"+a.desc)
	}
	return nil
}

func (a *testAction) Rollback(context.Context) error {
	a.rolledBack = true
	if a.order != nil {
		*a.order = append(*a.order, "rollback:"+a.desc)
	}
	return a.rollbackErr
}

func (a *testAction) Description() string { return a.desc }

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns stored context", func(t *testing.T) {
		t.Parallel()

		rc := New(context.Background())
		ctx := WithRequestContext(context.Background(), rc)
		assert.Same(t, rc, FromContext(ctx))
	})

	t.Run("falls back to a fresh context", func(t *testing.T) {
		t.Parallel()

		rc := FromContext(context.Background())
		require.NotNil(t, rc)
		assert.False(t, rc.Committed())
	})
}

func TestGetOrFetch_Memoizes(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	fetch := func(context.Context) (string, error) {
		calls++
		return "departments", nil
	}

	for range 3 {
		val, err := GetOrFetch(rc, "key", fetch)
		require.NoError(t, err)
		assert.Equal(t, "departments", val)
	}
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetchErr := errors.New("fetch failed")

	fetch := func(context.Context) (int, error) {
		calls++
		return 0, fetchErr
	}

	_, _ = GetOrFetch(rc, "key", fetch)
	_, err := GetOrFetch(rc, "key", fetch)

	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, err := GetOrFetch(rc, "key", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	_, err = GetOrFetch(rc, "key", func(context.Context) (string, error) { return "x", nil })
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDataProvider_Invalidate(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	p := NewDataProvider("employees", func(context.Context) (int, error) {
		calls++
		return calls, nil
	})

	first, _ := p.Get(rc)
	cached, _ := p.Get(rc)
	p.Invalidate(rc)
	refetched, _ := p.Get(rc)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, cached)
	assert.Equal(t, 2, refetched)
}

func TestAddAction(t *testing.T) {
	t.Parallel()

	t.Run("nil action", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		assert.ErrorIs(t, rc.AddAction(nil), ErrNilAction)
	})

	t.Run("after commit", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		require.NoError(t, rc.Commit(context.Background()))
		assert.ErrorIs(t, rc.AddAction(&testAction{desc: "late"}), ErrAlreadyCommitted)
	})
}

func TestCommit_ExecutesInOrder(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var order []string

	require.NoError(t, rc.AddAction(&testAction{desc: "a", order: &order}))
	require.NoError(t, rc.AddAction(&testAction{desc: "b", order: &order}))
	assert.Equal(t, 2, rc.Pending())

	require.NoError(t, rc.Commit(context.Background()))
	assert.Equal(t, []string{"execute:a", "execute:b"}, order)
	assert.True(t, rc.Committed())
	assert.Zero(t, rc.Pending())
}

func TestCommit_FailureRollsBackCompleted(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var order []string
	boom := errors.New("boom")

	a := &testAction{desc: "a", order: &order}
	b := &testAction{desc: "b", order: &order, rollbackErr: errors.New("rollback failed")}
	c := &testAction{desc: "c", order: &order, executeErr: boom}
	d := &testAction{desc: "d", order: &order}
	for _, act := range []*testAction{a, b, c, d} {
		require.NoError(t, rc.AddAction(act))
	}

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))

	err := rc.Commit(ctx)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "executing c")

	assert.Equal(t, []string{"execute:a", "execute:b", "rollback:b", "rollback:a"}, order,
		"rollback continues past a failing rollback, in reverse order")
	assert.False(t, c.rolledBack, "failed action is not rolled back")
	assert.False(t, d.executed, "later actions never run")
	assert.Contains(t, logs.String(), "rollback failed")
}

func TestCommit_CalledTwice(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	require.NoError(t, rc.Commit(context.Background()))
	assert.ErrorIs(t, rc.Commit(context.Background()), ErrAlreadyCommitted)
}

func TestCommit_FailureMarksCommitted(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	require.NoError(t, rc.AddAction(&testAction{desc: "x", executeErr: errors.New("fail")}))
	require.Error(t, rc.Commit(context.Background()))
	assert.True(t, rc.Committed())
}

package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gatecheck/internal/check"
)

// passing and failing build checks whose invocation count is observable.
func passing(t *testing.T, name string, calls *int) *check.Check {
	t.Helper()
	return check.Must(check.New(name, func(ctx context.Context, paths []string) error {
		*calls++
		return nil
	}))
}

func failing(t *testing.T, name string, calls *int) *check.Check {
	t.Helper()
	return check.Must(check.New(name, func(ctx context.Context, paths []string) error {
		*calls++
		return errors.New(name + " failed")
	}))
}

func assertAccounting(t *testing.T, rec Record, programLen int) {
	t.Helper()
	assert.Equal(t, programLen, len(rec.Passed)+len(rec.Failed)+len(rec.Skipped),
		"every check is accounted for exactly once")
}

func TestRunAllPass(t *testing.T) {
	var calls int
	program := []*check.Check{
		passing(t, "a", &calls),
		passing(t, "b", &calls),
	}

	ok, rec := New("/repo", []string{"x.go"}).Run(context.Background(), program)

	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, rec.Passed)
	assert.Empty(t, rec.Failed)
	assert.Empty(t, rec.Skipped)
	assert.Equal(t, 2, calls)
	assertAccounting(t, rec, len(program))
}

func TestFailAbortsByDefault(t *testing.T) {
	var calls int
	program := []*check.Check{
		passing(t, "a", &calls),
		failing(t, "b", &calls),
		passing(t, "c", &calls),
	}

	ok, rec := New("/repo", nil).Run(context.Background(), program)

	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, rec.Passed)
	assert.Equal(t, []string{"b"}, rec.Failed)
	assert.Equal(t, []string{"c"}, rec.Skipped)
	assert.Equal(t, 2, calls, "checks after the failure are never invoked")
	assertAccounting(t, rec, len(program))
}

func TestContinueOnError(t *testing.T) {
	var calls int
	program := []*check.Check{
		passing(t, "a", &calls),
		failing(t, "b", &calls),
		passing(t, "c", &calls),
	}

	ok, rec := New("/repo", nil, ContinueOnError(true)).Run(context.Background(), program)

	assert.False(t, ok, "a failure is overall failure even when the run continues")
	assert.Equal(t, []string{"a", "c"}, rec.Passed)
	assert.Equal(t, []string{"b"}, rec.Failed)
	assert.Empty(t, rec.Skipped)
	assert.Equal(t, 3, calls)
	assertAccounting(t, rec, len(program))
}

func TestCancelAlwaysAborts(t *testing.T) {
	for _, continueOnError := range []bool{false, true} {
		ctx, cancel := context.WithCancel(context.Background())

		var calls int
		cancelled := check.Must(check.New("b", func(ctx context.Context, paths []string) error {
			calls++
			cancel() // the operator interrupts while b runs
			return nil
		}))
		program := []*check.Check{
			passing(t, "a", &calls),
			cancelled,
			passing(t, "c", &calls),
		}

		ok, rec := New("/repo", nil, ContinueOnError(continueOnError)).Run(ctx, program)

		assert.False(t, ok)
		assert.Equal(t, []string{"a"}, rec.Passed)
		assert.Empty(t, rec.Failed)
		assert.Equal(t, []string{"b", "c"}, rec.Skipped,
			"the cancelled check is skipped once, not double-counted")
		assert.Equal(t, 2, calls, "nothing after the cancelled check is invoked")
		assertAccounting(t, rec, len(program))
	}
}

func TestSkippedCheckStillPassesVerdict(t *testing.T) {
	invoked := false
	c := check.Must(check.New("filtered-out", func(ctx context.Context, paths []string) error {
		invoked = true
		return errors.New("must not run")
	}, check.WithFilter(check.MustFilter([]string{".go"})), check.RunOnlyIfFiles()))

	ok, rec := New("/repo", nil).Run(context.Background(), []*check.Check{c})

	require.False(t, invoked)
	assert.True(t, ok, "nothing-to-check counts as Pass")
	assert.Equal(t, []string{"filtered-out"}, rec.Passed)
	assertAccounting(t, rec, 1)
}

func TestEmptyProgram(t *testing.T) {
	ok, rec := New("/repo", nil).Run(context.Background(), nil)
	assert.True(t, ok)
	assertAccounting(t, rec, 0)
}

func TestOrderIsProgramOrder(t *testing.T) {
	var order []string
	mk := func(name string) *check.Check {
		return check.Must(check.New(name, func(ctx context.Context, paths []string) error {
			order = append(order, name)
			return nil
		}))
	}

	program := []*check.Check{mk("first"), mk("second"), mk("third")}
	_, rec := New("/repo", nil).Run(context.Background(), program)

	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, order, rec.Passed)
}

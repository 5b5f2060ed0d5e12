package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// stubExecutor lets tests control executor behavior per task type.
type stubExecutor struct {
	fn func(ctx context.Context, params Params) (map[string]any, error)
}

func (s *stubExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	return s.fn(ctx, params)
}

// stubbedOrchestrator wires every task type to the same stub behavior.
func stubbedOrchestrator(fn func(ctx context.Context, params Params) (map[string]any, error)) (*Orchestrator, *Registry) {
	executors := make(map[Type]Executor)
	for _, taskType := range AllTypes() {
		executors[taskType] = &stubExecutor{fn: fn}
	}
	registry := NewRegistry()
	return NewOrchestrator(registry, executors, setupTestLogger()), registry
}

func waitForTerminal(t *testing.T, registry *Registry, id string) *Task {
	t.Helper()
	var got *Task
	require.Eventually(t, func() bool {
		snapshot, err := registry.Get(id)
		if err != nil {
			return false
		}
		got = snapshot
		return got.Terminal()
	}, 2*time.Second, 2*time.Millisecond)
	return got
}

func TestSubmitReturnsImmediately(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		close(started)
		<-release
		return map[string]any{"ok": true}, nil
	})
	defer o.Stop()

	id, err := o.Submit(TypeAnalyzeMarket, "blocked executor", nil)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// The task must be observable right away, in pending or later, while
	// the executor is still blocked.
	got, err := registry.Get(id)
	require.NoError(t, err)
	assert.Contains(t, []Status{StatusPending, StatusProcessing}, got.Status)

	<-started
	close(release)
	waitForTerminal(t, registry, id)
}

func TestSubmitUnknownTypeCreatesNoTask(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		return nil, nil
	})
	defer o.Stop()

	_, err := o.Submit(Type("fly_to_moon"), "impossible", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTaskType)
	assert.Zero(t, registry.Len())
}

func TestTaskCompletesWithResult(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		return map[string]any{"answer": 42.0}, nil
	})
	defer o.Stop()

	id, err := o.Submit(TypeGenerateReport, "", nil)
	require.NoError(t, err)

	got := waitForTerminal(t, registry, id)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, map[string]any{"answer": 42.0}, got.Result)
	assert.Empty(t, got.Error)
	require.NotNil(t, got.StartedAt)
	require.NotNil(t, got.CompletedAt)
	assert.False(t, got.StartedAt.Before(got.CreatedAt))
	assert.False(t, got.CompletedAt.Before(*got.StartedAt))
}

func TestTaskFailsWithError(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		return nil, errors.New("collaborator timeout")
	})
	defer o.Stop()

	id, err := o.Submit(TypeSearchBuyers, "", nil)
	require.NoError(t, err)

	got := waitForTerminal(t, registry, id)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "collaborator timeout", got.Error)
	assert.Nil(t, got.Result)
	require.NotNil(t, got.CompletedAt)
}

func TestExecutorPanicIsRecorded(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		panic("arithmetic went sideways")
	})
	defer o.Stop()

	id, err := o.Submit(TypeGenerateBudgetBuy, "", nil)
	require.NoError(t, err)

	got := waitForTerminal(t, registry, id)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Contains(t, got.Error, "executor panicked")
	assert.Contains(t, got.Error, "arithmetic went sideways")
}

func TestMissingExecutorFailsTask(t *testing.T) {
	// A valid type with no registered executor must fail the task, not
	// the scheduler.
	registry := NewRegistry()
	o := NewOrchestrator(registry, map[Type]Executor{}, setupTestLogger())
	defer o.Stop()

	id, err := o.Submit(TypeVerifyCompany, "", nil)
	require.NoError(t, err)

	got := waitForTerminal(t, registry, id)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Contains(t, got.Error, "no executor registered")
}

func TestTerminalSnapshotIsStable(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		return map[string]any{"ok": true}, nil
	})
	defer o.Stop()

	id, err := o.Submit(TypeGetPriceAnalysis, "", nil)
	require.NoError(t, err)

	first := waitForTerminal(t, registry, id)
	for i := 0; i < 10; i++ {
		again, err := registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, first.Status, again.Status)
		assert.Equal(t, first.Result, again.Result)
		assert.Equal(t, first.CompletedAt, again.CompletedAt)
	}
}

func TestConcurrentSubmissions(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		return map[string]any{"ok": true}, nil
	})
	defer o.Stop()

	const n = 150
	ids := make(chan string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id, err := o.Submit(TypeAnalyzeMarket, fmt.Sprintf("submission %d", i), nil)
			if err != nil {
				t.Errorf("submit failed: %v", err)
				return
			}
			ids <- id
		}(i)
	}
	wg.Wait()
	close(ids)

	// Every identifier is distinct.
	seen := make(map[string]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, n)
	assert.Equal(t, n, registry.Len())

	// Every task independently reaches a terminal state with exactly one
	// of result/error set.
	o.Wait()
	for id := range seen {
		got, err := registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
		assert.NotNil(t, got.Result)
		assert.Empty(t, got.Error)
	}
}

func TestStopDrainsInFlightTasks(t *testing.T) {
	o, registry := stubbedOrchestrator(func(ctx context.Context, params Params) (map[string]any, error) {
		time.Sleep(10 * time.Millisecond)
		return map[string]any{"ok": true}, nil
	})

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := o.Submit(TypeGenerateBudgetSell, "", nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	o.Stop()

	for _, id := range ids {
		got, err := registry.Get(id)
		require.NoError(t, err)
		assert.True(t, got.Terminal())
	}
}

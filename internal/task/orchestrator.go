package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mineralagent/mineral-agent-api/internal/redact"
)

// Orchestrator is the single entry point for submitting work. Submit
// registers a pending task and schedules its execution on a fresh
// goroutine; the caller never blocks on execution. The execution wrapper
// guarantees every scheduled task leaves pending exactly once, even when
// its executor fails or panics.
type Orchestrator struct {
	registry  *Registry
	executors map[Type]Executor
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates an Orchestrator dispatching to the given executor
// table and recording lifecycle state in the given registry.
func NewOrchestrator(registry *Registry, executors map[Type]Executor, logger *slog.Logger) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		registry:  registry,
		executors: executors,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Submit validates the task type, registers a new pending task, and
// schedules its execution. It returns the task identifier as soon as the
// task is registered, before execution begins.
//
// Returns ErrUnknownTaskType (wrapped) when taskType is outside the closed
// enumeration; in that case no task is created.
func (o *Orchestrator) Submit(taskType Type, description string, params Params) (string, error) {
	if !IsValidType(taskType) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTaskType, taskType)
	}

	t := New(taskType, description, params)
	if err := o.registry.Put(t); err != nil {
		return "", err
	}

	o.logger.Info("task created",
		"task_id", t.ID,
		"task_type", t.Type)

	o.wg.Add(1)
	go o.run(t.ID, t.Type, t.Parameters)

	return t.ID, nil
}

// Stop cancels the execution context handed to executors and waits for all
// in-flight tasks to reach a terminal state.
func (o *Orchestrator) Stop() {
	o.cancel()
	o.wg.Wait()
}

// Wait blocks until every task submitted so far has reached a terminal
// state. Intended for draining during shutdown and for tests.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// run is the execution wrapper for a single task. It moves the task to
// processing, invokes the matching executor, and records the terminal
// state. Executor errors and panics are captured here and never propagate
// further.
func (o *Orchestrator) run(id string, taskType Type, params Params) {
	defer o.wg.Done()

	logger := o.logger.With("task_id", id, "task_type", taskType)

	if err := o.registry.Update(id, func(t *Task) {
		now := time.Now().UTC()
		t.Status = StatusProcessing
		t.StartedAt = &now
	}); err != nil {
		// Unreachable while tasks are never deleted; log and bail rather
		// than panic inside the scheduler.
		logger.Error("failed to mark task processing", "error", err)
		return
	}

	logger.Info("processing task")

	result, err := o.execute(taskType, params)

	if err != nil {
		logger.Error("task execution failed", "error", err)
		// The error string is client-visible through the task record, so
		// credentials are scrubbed before it is stored.
		o.finish(id, func(t *Task) {
			t.Status = StatusFailed
			t.Error = redact.Error(err)
		})
		return
	}

	logger.Info("task completed successfully")
	o.finish(id, func(t *Task) {
		t.Status = StatusCompleted
		t.Result = result
	})
}

// execute dispatches to the matching executor, converting panics into
// ordinary errors so a misbehaving executor can never crash the scheduler
// or disturb unrelated tasks.
func (o *Orchestrator) execute(taskType Type, params Params) (result map[string]any, err error) {
	exec, ok := o.executors[taskType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoExecutor, taskType)
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("executor panicked: %v", r)
		}
	}()

	return exec.Execute(o.ctx, params)
}

// finish stamps the terminal transition. completed_at is set in the same
// atomic update as the status and result/error fields.
func (o *Orchestrator) finish(id string, mutate func(*Task)) {
	if err := o.registry.Update(id, func(t *Task) {
		mutate(t)
		now := time.Now().UTC()
		t.CompletedAt = &now
	}); err != nil {
		o.logger.Error("failed to record task completion", "task_id", id, "error", err)
	}
}

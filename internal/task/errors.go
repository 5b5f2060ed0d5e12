package task

import "errors"

// Common errors returned by the task registry and orchestrator.
var (
	// ErrTaskNotFound is returned when a queried task identifier is unknown.
	// Absence is a normal, non-exceptional outcome.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists is returned on an identifier collision during insert.
	// Given the ID generation scheme this indicates an internal invariant
	// violation; it aborts only the offending submission.
	ErrTaskExists = errors.New("task already exists")

	// ErrUnknownTaskType is returned synchronously when a submission names
	// a type outside the closed enumeration. No task is created.
	ErrUnknownTaskType = errors.New("unknown task type")

	// ErrNoExecutor is returned when a valid task type has no registered
	// executor. The execution wrapper records it as the task's failure.
	ErrNoExecutor = errors.New("no executor registered for task type")
)

// Package task implements the asynchronous task-orchestration core: the
// in-memory registry that owns every task record, the orchestrator that
// accepts typed submissions and schedules their execution without blocking
// the caller, and the executor set bound to the closed task-type
// enumeration.
//
// A task's lifecycle is pending → processing → completed | failed. Each
// transition is applied atomically by the registry, and the orchestrator's
// execution wrapper guarantees that every submitted task leaves pending
// exactly once, even when its executor fails or panics. Task records are
// kept for the life of the process and never evicted.
package task

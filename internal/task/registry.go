package task

import (
	"fmt"
	"sync"
)

// Registry is the thread-safe in-memory owner of all task records. Records
// are never evicted for the life of the process; losing them on restart is
// an explicit non-goal. Readers always receive snapshots, and every
// mutation happens atomically under the registry lock so no reader can
// observe a half-applied transition.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	order []string // insertion order, for stable listings
}

// NewRegistry creates an empty task registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]*Task),
	}
}

// Put inserts a new task under its identifier.
// Returns ErrTaskExists if the identifier is already present.
func (r *Registry) Put(t *Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; ok {
		return fmt.Errorf("%w: %s", ErrTaskExists, t.ID)
	}

	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// Get returns a snapshot of the task with the given identifier.
// Returns ErrTaskNotFound when the identifier is unknown.
func (r *Registry) Get(id string) (*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t.snapshot(), nil
}

// List returns snapshots of every tracked task in insertion order.
func (r *Registry) List() []*Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id].snapshot())
	}
	return out
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// Update applies mutate to the task with the given identifier while holding
// the registry lock, so the transition is atomic with respect to concurrent
// readers and writers. Returns ErrTaskNotFound when the identifier is
// unknown.
func (r *Registry) Update(id string, mutate func(*Task)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	mutate(t)
	return nil
}

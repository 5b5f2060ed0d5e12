package task

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Status represents the current state of a task.
type Status string

// Possible task status values. A task moves pending → processing and then
// to exactly one of the terminal states; no transition ever goes backward.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Type identifies which executor handles a task.
type Type string

// The closed enumeration of task types.
const (
	TypeSearchBuyers       Type = "search_buyers"
	TypeGenerateBudgetBuy  Type = "generate_budget_buy"
	TypeGenerateBudgetSell Type = "generate_budget_sell"
	TypeAnalyzeMarket      Type = "analyze_market"
	TypeVerifyCompany      Type = "verify_company"
	TypeGetPriceAnalysis   Type = "get_price_analysis"
	TypeGenerateReport     Type = "generate_report"
)

// AllTypes lists every valid task type, in display order.
func AllTypes() []Type {
	return []Type{
		TypeSearchBuyers,
		TypeGenerateBudgetBuy,
		TypeGenerateBudgetSell,
		TypeAnalyzeMarket,
		TypeVerifyCompany,
		TypeGetPriceAnalysis,
		TypeGenerateReport,
	}
}

// IsValidType reports whether t belongs to the closed enumeration.
func IsValidType(t Type) bool {
	switch t {
	case TypeSearchBuyers, TypeGenerateBudgetBuy, TypeGenerateBudgetSell,
		TypeAnalyzeMarket, TypeVerifyCompany, TypeGetPriceAnalysis,
		TypeGenerateReport:
		return true
	default:
		return false
	}
}

// Task is a unit of requested work with a tracked lifecycle. All records
// are owned by the Registry; other components reference tasks by ID and
// read them through snapshots.
type Task struct {
	ID          string         `json:"id"`
	Type        Type           `json:"type"`
	Description string         `json:"description"`
	Parameters  Params         `json:"parameters"`
	Status      Status         `json:"status"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// idSequence disambiguates IDs created within the same clock reading.
var idSequence atomic.Uint64

// NewID generates a fresh task identifier. Combining the wall clock with a
// process-wide sequence keeps IDs unique under rapid successive calls.
func NewID() string {
	return fmt.Sprintf("task_%d_%d", time.Now().UnixNano(), idSequence.Add(1))
}

// New creates a Task in pending state with a fresh identifier.
func New(taskType Type, description string, params Params) *Task {
	if params == nil {
		params = Params{}
	}
	return &Task{
		ID:          NewID(),
		Type:        taskType,
		Description: description,
		Parameters:  params,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// Terminal reports whether the task has reached a final state.
func (t *Task) Terminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// snapshot returns a copy of the record safe to hand out to readers.
// Parameters and Result maps are never mutated after being set, so a
// shallow copy of the struct is sufficient.
func (t *Task) snapshot() *Task {
	copied := *t
	return &copied
}

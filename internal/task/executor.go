package task

import (
	"context"
	"log/slog"

	"github.com/mineralagent/mineral-agent-api/internal/generation"
	"github.com/mineralagent/mineral-agent-api/internal/lookup"
	"github.com/mineralagent/mineral-agent-api/internal/store"
)

// Executor is the behavior bound to a task type. Implementations take the
// task's parameter bag and produce a result mapping, or fail with a
// descriptive error. Executors never touch the task record itself; the
// orchestrator's execution wrapper performs all status transitions.
type Executor interface {
	// Execute runs the operation. Missing optional parameters are
	// substituted with documented defaults. A collaborator failure must be
	// propagated as the executor's own failure, never swallowed into
	// partial or empty output.
	Execute(ctx context.Context, params Params) (map[string]any, error)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(ctx context.Context, params Params) (map[string]any, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, params Params) (map[string]any, error) {
	return f(ctx, params)
}

// ExecutorDeps carries the collaborators shared by the executor set.
type ExecutorDeps struct {
	// Generator answers free-form questions through the LLM collaborator.
	Generator generation.Generator

	// Companies resolves RUCs against the SUNAT registry.
	Companies lookup.CompanyLookup

	// Prices reads the latest stored commodity quotes.
	Prices store.PriceStore

	// IGVPercentage is the default value-added-tax rate for buy budgets
	// when the submission carries no igv_percentage parameter.
	IGVPercentage float64

	Logger *slog.Logger
}

// NewExecutors builds the registration table mapping every task type to its
// executor. The table is the single dispatch point for the orchestrator;
// every member of the closed type enumeration must appear here.
func NewExecutors(deps ExecutorDeps) map[Type]Executor {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.IGVPercentage == 0 {
		deps.IGVPercentage = defaultIGVPercentage
	}

	return map[Type]Executor{
		TypeGenerateBudgetBuy:  &buyBudgetExecutor{igvPercentage: deps.IGVPercentage, logger: deps.Logger},
		TypeGenerateBudgetSell: &sellBudgetExecutor{logger: deps.Logger},
		TypeSearchBuyers:       &searchBuyersExecutor{generator: deps.Generator, logger: deps.Logger},
		TypeAnalyzeMarket:      &marketAnalysisExecutor{generator: deps.Generator, logger: deps.Logger},
		TypeVerifyCompany:      &companyVerificationExecutor{companies: deps.Companies, logger: deps.Logger},
		TypeGetPriceAnalysis:   &priceAnalysisExecutor{prices: deps.Prices, logger: deps.Logger},
		TypeGenerateReport:     &reportExecutor{generator: deps.Generator, logger: deps.Logger},
	}
}

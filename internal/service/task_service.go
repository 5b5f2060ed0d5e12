package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mineralagent/mineral-agent-api/internal/config"
	"github.com/mineralagent/mineral-agent-api/internal/domain"
	"github.com/mineralagent/mineral-agent-api/internal/store"
	"github.com/mineralagent/mineral-agent-api/internal/task"
)

// ErrPriceStoreUnavailable indicates that price persistence is not wired,
// so quote recording and retrieval cannot be served.
var ErrPriceStoreUnavailable = errors.New("price store unavailable")

// TaskService is the application-facing facade over the orchestration core.
// It owns submission conveniences: mapping raw request kinds onto the task
// type enumeration and filling omitted budget parameters from configuration
// and the latest stored price quote.
type TaskService struct {
	orchestrator *task.Orchestrator
	registry     *task.Registry
	prices       store.PriceStore
	taskConfig   config.TaskConfig
	logger       *slog.Logger
}

// NewTaskService creates a TaskService. prices may be nil when no database
// is configured; budget submissions then rely on built-in defaults.
func NewTaskService(
	orchestrator *task.Orchestrator,
	registry *task.Registry,
	prices store.PriceStore,
	taskConfig config.TaskConfig,
	logger *slog.Logger,
) *TaskService {
	return &TaskService{
		orchestrator: orchestrator,
		registry:     registry,
		prices:       prices,
		taskConfig:   taskConfig,
		logger:       logger,
	}
}

// Submit registers a task of the given kind and returns its identifier.
// Returns task.ErrUnknownTaskType (wrapped) for kinds outside the closed
// enumeration.
func (s *TaskService) Submit(kind, description string, params task.Params) (string, error) {
	return s.orchestrator.Submit(task.Type(kind), description, params)
}

// GetTask returns a snapshot of the task with the given identifier.
func (s *TaskService) GetTask(id string) (*task.Task, error) {
	return s.registry.Get(id)
}

// ListTasks returns snapshots of every known task in submission order.
func (s *TaskService) ListTasks() []*task.Task {
	return s.registry.List()
}

// SubmitBuyerSearch schedules a buyer search, defaulting the location from
// configuration when the caller omits it.
func (s *TaskService) SubmitBuyerSearch(mineralType, location string) (string, error) {
	if location == "" {
		location = s.taskConfig.DefaultLocation
	}
	params := task.Params{
		"mineral_type": mineralType,
		"location":     location,
	}
	description := "Buscar compradores de " + mineralType + " en " + location
	return s.orchestrator.Submit(task.TypeSearchBuyers, description, params)
}

// SubmitBuyBudget schedules a buy-budget calculation. When the caller omits
// price_usd_oz or fx_rate and a quote is stored for the mineral, the stored
// quote fills them in; a missing quote is not an error, the calculator's
// defaults apply.
func (s *TaskService) SubmitBuyBudget(ctx context.Context, params task.Params) (string, error) {
	params = s.fillQuote(ctx, params)
	if _, ok := params["igv_percentage"]; !ok && s.taskConfig.IGVPercentage > 0 {
		params["igv_percentage"] = s.taskConfig.IGVPercentage
	}
	return s.orchestrator.Submit(task.TypeGenerateBudgetBuy, "Presupuesto de compra", params)
}

// SubmitSellBudget schedules a sell-budget calculation with the same quote
// fallback as SubmitBuyBudget.
func (s *TaskService) SubmitSellBudget(ctx context.Context, params task.Params) (string, error) {
	params = s.fillQuote(ctx, params)
	return s.orchestrator.Submit(task.TypeGenerateBudgetSell, "Presupuesto de venta", params)
}

// RecordPrice validates and stores a commodity quote.
func (s *TaskService) RecordPrice(ctx context.Context, commodity string, usdPerOz, fxRate float64, source string) (*domain.Price, error) {
	price, err := domain.NewPrice(commodity, usdPerOz, fxRate, source)
	if err != nil {
		return nil, err
	}
	if s.prices == nil {
		return nil, ErrPriceStoreUnavailable
	}
	if err := s.prices.Save(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// LatestPrice returns the most recent stored quote for a commodity.
func (s *TaskService) LatestPrice(ctx context.Context, commodity string) (*domain.Price, error) {
	if s.prices == nil {
		return nil, ErrPriceStoreUnavailable
	}
	return s.prices.GetLatest(ctx, commodity)
}

// fillQuote copies the parameter bag and fills price_usd_oz and fx_rate
// from the latest stored quote when both the caller and the bag omit them.
func (s *TaskService) fillQuote(ctx context.Context, params task.Params) task.Params {
	filled := make(task.Params, len(params)+2)
	for k, v := range params {
		filled[k] = v
	}

	_, hasPrice := filled["price_usd_oz"]
	_, hasFX := filled["fx_rate"]
	if hasPrice && hasFX {
		return filled
	}
	if s.prices == nil {
		return filled
	}

	mineral := filled.String("mineral_type", "oro")
	quote, err := s.prices.GetLatest(ctx, mineral)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.WarnContext(ctx, "price lookup failed, using calculator defaults",
				"mineral_type", mineral,
				"error", err)
		}
		return filled
	}

	if !hasPrice {
		filled["price_usd_oz"] = quote.USDPerOz
	}
	if !hasFX {
		filled["fx_rate"] = quote.FXRate
	}
	return filled
}

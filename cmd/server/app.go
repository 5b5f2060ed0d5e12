package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mineralagent/mineral-agent-api/internal/config"
	"github.com/mineralagent/mineral-agent-api/internal/lookup"
	"github.com/mineralagent/mineral-agent-api/internal/platform/gemini"
	"github.com/mineralagent/mineral-agent-api/internal/platform/postgres"
	"github.com/mineralagent/mineral-agent-api/internal/platform/sunat"
	"github.com/mineralagent/mineral-agent-api/internal/service"
	"github.com/mineralagent/mineral-agent-api/internal/task"
)

// application holds the wired dependency graph for the server process.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	orchestrator *task.Orchestrator
	taskService  *service.TaskService
	companies    lookup.CompanyLookup
}

// newApplication wires every component: database, price store, the Gemini
// generator, the SUNAT client, the executor table, the orchestrator, and
// the task service facade.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	priceStore := postgres.NewPostgresPriceStore(db, logger)

	generator, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	companies := sunat.NewClient(logger, cfg.Lookup)

	executors := task.NewExecutors(task.ExecutorDeps{
		Generator:     generator,
		Companies:     companies,
		Prices:        priceStore,
		IGVPercentage: cfg.Task.IGVPercentage,
		Logger:        logger,
	})

	registry := task.NewRegistry()
	orchestrator := task.NewOrchestrator(registry, executors, logger)

	taskService := service.NewTaskService(orchestrator, registry, priceStore, cfg.Task, logger)

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		orchestrator: orchestrator,
		taskService:  taskService,
		companies:    companies,
	}, nil
}

// cleanup releases application resources in reverse dependency order: the
// orchestrator drains in-flight tasks before the database closes.
func (app *application) cleanup() {
	app.logger.Info("Draining in-flight tasks")
	app.orchestrator.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}

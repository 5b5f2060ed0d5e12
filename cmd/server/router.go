package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mineralagent/mineral-agent-api/internal/api"
	apiMiddleware "github.com/mineralagent/mineral-agent-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	priceHandler := api.NewPriceHandler(app.taskService, app.logger)
	companyHandler := api.NewCompanyHandler(app.companies, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.SubmitTask)
			r.Get("/", taskHandler.ListTasks)
			r.Get("/{id}", taskHandler.GetTask)
			r.Post("/search-buyers", taskHandler.SearchBuyers)
			r.Post("/budget/buy", taskHandler.BuyBudget)
			r.Post("/budget/sell", taskHandler.SellBudget)
		})

		r.Post("/prices", priceHandler.RecordPrice)
		r.Get("/prices/{commodity}", priceHandler.GetLatestPrice)

		r.Get("/companies/{ruc}", companyHandler.GetCompany)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

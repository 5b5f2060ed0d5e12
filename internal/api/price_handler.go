package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mineralagent/mineral-agent-api/internal/api/shared"
	"github.com/mineralagent/mineral-agent-api/internal/service"
)

// PriceHandler serves the commodity price quote endpoints.
type PriceHandler struct {
	tasks  *service.TaskService
	logger *slog.Logger
}

// NewPriceHandler creates a PriceHandler.
func NewPriceHandler(tasks *service.TaskService, logger *slog.Logger) *PriceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PriceHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "price_handler")),
	}
}

// RecordPrice handles POST /api/prices.
func (h *PriceHandler) RecordPrice(w http.ResponseWriter, r *http.Request) {
	var req RecordPriceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	price, err := h.tasks.RecordPrice(r.Context(), req.Commodity, req.USDPerOz, req.FXRate, req.Source)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, price)
}

// GetLatestPrice handles GET /api/prices/{commodity}.
func (h *PriceHandler) GetLatestPrice(w http.ResponseWriter, r *http.Request) {
	commodity := strings.ToLower(chi.URLParam(r, "commodity"))

	price, err := h.tasks.LatestPrice(r.Context(), commodity)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, price)
}

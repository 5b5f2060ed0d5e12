package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mineralagent/mineral-agent-api/internal/api/shared"
	"github.com/mineralagent/mineral-agent-api/internal/lookup"
)

// CompanyHandler serves the synchronous SUNAT lookup endpoint. Unlike the
// verify_company task, it resolves inline and returns the registry record.
type CompanyHandler struct {
	companies lookup.CompanyLookup
	logger    *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(companies lookup.CompanyLookup, logger *slog.Logger) *CompanyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyHandler{
		companies: companies,
		logger:    logger.With(slog.String("component", "company_handler")),
	}
}

// GetCompany handles GET /api/companies/{ruc}.
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	ruc := chi.URLParam(r, "ruc")

	company, err := h.companies.FindByRUC(r.Context(), ruc)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, company)
}

package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mineralagent/mineral-agent-api/internal/lookup"
)

// companyVerificationExecutor checks a company against the SUNAT registry.
// A definitive "not registered" answer completes the task with
// verified=false; only transport or authentication failures fail the task.
type companyVerificationExecutor struct {
	companies lookup.CompanyLookup
	logger    *slog.Logger
}

func (e *companyVerificationExecutor) Execute(ctx context.Context, params Params) (map[string]any, error) {
	companyName := params.String("company_name", "")
	ruc := params.String("ruc", "")

	e.logger.InfoContext(ctx, "verifying company",
		"company_name", companyName,
		"ruc", ruc)

	company, err := e.companies.FindByRUC(ctx, ruc)
	if err != nil {
		if errors.Is(err, lookup.ErrCompanyNotFound) || errors.Is(err, lookup.ErrInvalidRUC) {
			return map[string]any{
				"success":  true,
				"executor": "verify_company",
				"company": map[string]any{
					"name":     companyName,
					"ruc":      ruc,
					"verified": false,
					"message":  err.Error(),
				},
			}, nil
		}
		return nil, fmt.Errorf("company verification failed: %w", err)
	}

	name := company.Name
	if name == "" {
		name = companyName
	}

	return map[string]any{
		"success":  true,
		"executor": "verify_company",
		"company": map[string]any{
			"name":       name,
			"legal_name": company.LegalName,
			"ruc":        company.RUC,
			"verified":   company.Active,
			"status":     company.Status,
			"address":    company.Address,
			"message":    fmt.Sprintf("Empresa %s verificada en SUNAT", name),
		},
	}, nil
}

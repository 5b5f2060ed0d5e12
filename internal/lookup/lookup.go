// Package lookup provides the interface and types for querying the SUNAT
// company registry by RUC (the Peruvian taxpayer identifier). It is the
// boundary between the application core and the government-registry API.
package lookup

import (
	"context"
	"errors"
)

// Common errors returned by company lookups
var (
	// ErrInvalidRUC is returned when the identifier is not 11 numeric digits.
	ErrInvalidRUC = errors.New("RUC must be 11 numeric digits")

	// ErrCompanyNotFound is returned when the registry has no record for the
	// RUC. This is a definitive answer, not a transport failure.
	ErrCompanyNotFound = errors.New("company not found in registry")

	// ErrLookupFailed is returned for transport, authentication, or provider
	// errors while querying the registry.
	ErrLookupFailed = errors.New("company registry lookup failed")
)

// Company is the registry record for a business.
type Company struct {
	RUC       string `json:"ruc"`
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	Status    string `json:"status"`
	Address   string `json:"address"`
	Active    bool   `json:"active"`
}

// CompanyLookup resolves a RUC to a registry record.
type CompanyLookup interface {
	// FindByRUC returns the company registered under the given RUC.
	// Returns ErrInvalidRUC for malformed identifiers, ErrCompanyNotFound
	// when the registry has no record, and ErrLookupFailed (wrapped) for
	// transport-level problems.
	FindByRUC(ctx context.Context, ruc string) (*Company, error)
}

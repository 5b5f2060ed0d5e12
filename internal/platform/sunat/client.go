package sunat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mineralagent/mineral-agent-api/internal/config"
	"github.com/mineralagent/mineral-agent-api/internal/lookup"
)

// Client implements lookup.CompanyLookup against a SUNAT RUC registry API.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

var _ lookup.CompanyLookup = (*Client)(nil)

// rucResponse is the registry's wire shape for a single company record.
type rucResponse struct {
	RUC         string `json:"ruc"`
	Nombre      string `json:"nombre"`
	RazonSocial string `json:"razonSocial"`
	Estado      string `json:"estado"`
	Direccion   string `json:"direccion"`
}

// NewClient creates a SUNAT lookup client from the lookup configuration.
func NewClient(logger *slog.Logger, cfg config.LookupConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.RUCAPIURL, "/"),
		apiToken:   cfg.APIToken,
	}
}

// FindByRUC fetches the company registered under the given RUC.
//
// Returns lookup.ErrInvalidRUC for malformed identifiers, and
// lookup.ErrCompanyNotFound when the registry has no record. Transport and
// registry failures are wrapped in lookup.ErrLookupFailed.
func (c *Client) FindByRUC(ctx context.Context, ruc string) (*lookup.Company, error) {
	if !validRUC(ruc) {
		return nil, fmt.Errorf("%w: %q", lookup.ErrInvalidRUC, ruc)
	}

	url := c.baseURL + "/" + ruc
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", lookup.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	c.logger.DebugContext(ctx, "querying RUC registry", "ruc", ruc)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrLookupFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: ruc %s", lookup.ErrCompanyNotFound, ruc)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: registry returned status %d", lookup.ErrLookupFailed, resp.StatusCode)
	}

	var record rucResponse
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", lookup.ErrLookupFailed, err)
	}

	name := record.Nombre
	if name == "" {
		name = record.RazonSocial
	}

	return &lookup.Company{
		RUC:       record.RUC,
		Name:      name,
		LegalName: record.RazonSocial,
		Status:    record.Estado,
		Address:   record.Direccion,
		Active:    strings.EqualFold(record.Estado, "ACTIVO"),
	}, nil
}

// validRUC reports whether the identifier is exactly 11 decimal digits.
func validRUC(ruc string) bool {
	if len(ruc) != 11 {
		return false
	}
	for _, r := range ruc {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

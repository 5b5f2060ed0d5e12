package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Price
var (
	ErrEmptyPriceID       = errors.New("price ID cannot be empty")
	ErrEmptyCommodity     = errors.New("price commodity cannot be empty")
	ErrNonPositivePrice   = errors.New("price per troy ounce must be positive")
	ErrNonPositiveFXRate  = errors.New("exchange rate must be positive")
	ErrZeroPriceTimestamp = errors.New("price timestamp cannot be zero")
)

// Price represents a quoted spot price for a commodity together with the
// USD/PEN exchange rate in effect when it was fetched. The latest quote per
// commodity feeds the budget convenience layer and the price-analysis task.
type Price struct {
	ID        uuid.UUID `json:"id"`
	Commodity string    `json:"commodity"`
	USDPerOz  float64   `json:"usd_per_oz"`
	FXRate    float64   `json:"fx_rate"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewPrice creates a new Price quote for the given commodity. It generates a
// new UUID, normalizes the commodity name to lower case, and stamps the fetch
// time. Returns an error if validation fails.
func NewPrice(commodity string, usdPerOz, fxRate float64, source string) (*Price, error) {
	if source == "" {
		source = "manual"
	}

	price := &Price{
		ID:        uuid.New(),
		Commodity: strings.ToLower(strings.TrimSpace(commodity)),
		USDPerOz:  usdPerOz,
		FXRate:    fxRate,
		Source:    source,
		FetchedAt: time.Now().UTC(),
	}

	if err := price.Validate(); err != nil {
		return nil, err
	}

	return price, nil
}

// Validate checks if the Price has valid data.
// Returns an error if any field fails validation.
func (p *Price) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPriceID
	}

	if p.Commodity == "" {
		return ErrEmptyCommodity
	}

	if p.USDPerOz <= 0 {
		return ErrNonPositivePrice
	}

	if p.FXRate <= 0 {
		return ErrNonPositiveFXRate
	}

	if p.FetchedAt.IsZero() {
		return ErrZeroPriceTimestamp
	}

	return nil
}

package store

import (
	"context"

	"github.com/mineralagent/mineral-agent-api/internal/domain"
)

// PriceStore defines the interface for persisting commodity price quotes.
type PriceStore interface {
	// Save persists a price quote. Returns ErrInvalidEntity (wrapped) if
	// the quote fails validation.
	Save(ctx context.Context, price *domain.Price) error

	// GetLatest returns the most recently fetched quote for the commodity.
	// Returns ErrPriceNotFound when no quote exists.
	GetLatest(ctx context.Context, commodity string) (*domain.Price, error)
}

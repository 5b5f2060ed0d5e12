package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mineralagent/mineral-agent-api/internal/domain"
	"github.com/mineralagent/mineral-agent-api/internal/store"
)

// PostgresPriceStore implements the store.PriceStore interface using a
// PostgreSQL database as the storage backend.
type PostgresPriceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPriceStore creates a new PostgreSQL implementation of the
// PriceStore interface. The caller owns the database handle or transaction.
// If logger is nil, a default logger will be used.
func NewPostgresPriceStore(db store.DBTX, logger *slog.Logger) *PostgresPriceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresPriceStore{
		db:     db,
		logger: logger.With(slog.String("component", "price_store")),
	}
}

var _ store.PriceStore = (*PostgresPriceStore)(nil)

// Save persists a price quote. Validation failures are wrapped in
// store.ErrInvalidEntity.
func (s *PostgresPriceStore) Save(ctx context.Context, price *domain.Price) error {
	if err := price.Validate(); err != nil {
		s.logger.WarnContext(ctx, "price validation failed during save",
			slog.String("error", err.Error()),
			slog.String("commodity", price.Commodity))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO prices (id, commodity, usd_per_oz, fx_rate, source, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		price.ID,
		price.Commodity,
		price.USDPerOz,
		price.FXRate,
		price.Source,
		price.FetchedAt,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save price",
			slog.String("error", err.Error()),
			slog.String("commodity", price.Commodity))
		return MapError(err)
	}

	s.logger.InfoContext(ctx, "price saved",
		slog.String("price_id", price.ID.String()),
		slog.String("commodity", price.Commodity),
		slog.Float64("usd_per_oz", price.USDPerOz))
	return nil
}

// GetLatest returns the most recently fetched quote for a commodity.
// Returns store.ErrPriceNotFound when no quote exists.
func (s *PostgresPriceStore) GetLatest(ctx context.Context, commodity string) (*domain.Price, error) {
	query := `
		SELECT id, commodity, usd_per_oz, fx_rate, source, fetched_at
		FROM prices
		WHERE commodity = $1
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var price domain.Price
	err := s.db.QueryRowContext(ctx, query, commodity).Scan(
		&price.ID,
		&price.Commodity,
		&price.USDPerOz,
		&price.FXRate,
		&price.Source,
		&price.FetchedAt,
	)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: commodity %s", store.ErrPriceNotFound, commodity)
		}
		s.logger.ErrorContext(ctx, "failed to get latest price",
			slog.String("error", err.Error()),
			slog.String("commodity", commodity))
		return nil, MapError(err)
	}

	return &price, nil
}

package market

import (
	"context"
	"errors"
	"fmt"

	appconfig "wastebazaar/internal/config"
	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrUnsupportedSource = errors.New("unsupported market data source")

// Oracle serves comparison prices per material type. Real market data feeds
// are not integrated yet; the only supported source is the built-in mock
// quote table.
type Oracle struct {
	quotes map[entities.MaterialType][]entities.MarketQuote
	log    *zap.Logger
}

var _ interfaces.IMarketOracle = (*Oracle)(nil)

// New builds the oracle for the configured source.
func New(cfg appconfig.MarketConfig, log *zap.Logger) (*Oracle, error) {
	if cfg.Source != "mock" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, cfg.Source)
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("market oracle initialized", zap.String("source", cfg.Source))
	return &Oracle{quotes: mockQuotes(), log: log}, nil
}

// GetMarketPrices returns the quotes for a material type. Unknown types get
// an empty list, never an error.
func (o *Oracle) GetMarketPrices(_ context.Context, materialType entities.MaterialType) ([]entities.MarketQuote, error) {
	quotes := o.quotes[materialType]
	o.log.Debug("market prices served",
		zap.String("material_type", string(materialType)),
		zap.Int("quotes", len(quotes)))

	out := make([]entities.MarketQuote, len(quotes))
	copy(out, quotes)
	return out, nil
}

func mockQuotes() map[entities.MaterialType][]entities.MarketQuote {
	return map[entities.MaterialType][]entities.MarketQuote{
		entities.MaterialTypePlastic: {
			{Source: "Lagos Market", Price: 150, Currency: "NGN", Unit: "per_kg"},
			{Source: "Kano Market", Price: 140, Currency: "NGN", Unit: "per_kg"},
			{Source: "Port Harcourt", Price: 160, Currency: "NGN", Unit: "per_kg"},
		},
		entities.MaterialTypeMetal: {
			{Source: "Lagos Scrap", Price: 350, Currency: "NGN", Unit: "per_kg"},
			{Source: "Aba Market", Price: 330, Currency: "NGN", Unit: "per_kg"},
			{Source: "Kaduna Steel", Price: 340, Currency: "NGN", Unit: "per_kg"},
		},
		entities.MaterialTypeHousehold: {
			{Source: "Lagos Waste", Price: 80, Currency: "NGN", Unit: "per_kg"},
			{Source: "Ibadan Market", Price: 75, Currency: "NGN", Unit: "per_kg"},
		},
	}
}

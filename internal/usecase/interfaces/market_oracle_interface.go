package interfaces

import (
	"context"

	"wastebazaar/internal/domain/entities"
)

// IMarketOracle abstracts external market price feeds. An unknown material
// type yields an empty quote list, not an error.
type IMarketOracle interface {
	GetMarketPrices(ctx context.Context, materialType entities.MaterialType) ([]entities.MarketQuote, error)
}

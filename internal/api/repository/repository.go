package repository

import (
	"context"

	"golang-crypto-rebound/internal/entity"
)

// MarketDataRepository fetches current market metrics for the top assets by
// market cap.
type MarketDataRepository interface {
	GetMarkets(ctx context.Context, limit int) ([]entity.Crypto, error)
}

// YearlyRangeRepository supplies the trailing-year high/low prices for an
// asset. The scorer consumes whatever this provides, so a real historical
// data source can replace the synthetic one without touching the scoring.
type YearlyRangeRepository interface {
	GetRange(id string, price float64) (high, low float64)
}

package dto

// CoinGeckoMarket mirrors one record of the CoinGecko /coins/markets response.
// Numeric fields are pointers because the API returns null for sparse assets.
type CoinGeckoMarket struct {
	ID                string   `json:"id"`
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name"`
	CurrentPrice      *float64 `json:"current_price"`
	MarketCap         *float64 `json:"market_cap"`
	TotalVolume       *float64 `json:"total_volume"`
	PriceChangePct1h  *float64 `json:"price_change_percentage_1h_in_currency"`
	PriceChangePct24h *float64 `json:"price_change_percentage_24h"`
	PriceChangePct7d  *float64 `json:"price_change_percentage_7d_in_currency"`
	PriceChangePct30d *float64 `json:"price_change_percentage_30d_in_currency"`
}

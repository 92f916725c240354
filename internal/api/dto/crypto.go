package dto

// CryptoResponse is one entry of the ranking endpoint.
type CryptoResponse struct {
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	PriceUSD        float64  `json:"price_usd"`
	MarketCapUSD    *float64 `json:"market_cap_usd,omitempty"`
	Volume24hUSD    *float64 `json:"volume_24h_usd,omitempty"`
	PercentChange1h *float64 `json:"percent_change_1h,omitempty"`
	PercentChange24 *float64 `json:"percent_change_24h,omitempty"`
	PercentChange7d *float64 `json:"percent_change_7d,omitempty"`
	PercentChange30 *float64 `json:"percent_change_30d,omitempty"`
	MaxPrice1Y      *float64 `json:"max_price_1y,omitempty"`
	MinPrice1Y      *float64 `json:"min_price_1y,omitempty"`

	PerformanceScore      float64 `json:"performance_score"`
	DrawdownScore         float64 `json:"drawdown_score"`
	ReboundPotentialScore float64 `json:"rebound_potential_score"`
	MomentumScore         float64 `json:"momentum_score"`
	TotalScore            float64 `json:"total_score"`

	RecoveryPotential75 string  `json:"recovery_potential_75"`
	DrawdownPercentage  float64 `json:"drawdown_percentage"`
	Rank                int     `json:"rank"`
	LastUpdated         string  `json:"last_updated"`
}

// MultiPeriodCryptoResponse is one entry of the multi-period analysis endpoint.
type MultiPeriodCryptoResponse struct {
	Symbol            string             `json:"symbol"`
	Name              string             `json:"name"`
	PriceUSD          float64            `json:"price_usd"`
	MarketCapUSD      *float64           `json:"market_cap_usd,omitempty"`
	AverageScore      float64            `json:"average_score"`
	LongTermAverage   *float64           `json:"long_term_average,omitempty"`
	PeriodScores      map[string]float64 `json:"period_scores"`
	LongTermScores    map[string]float64 `json:"long_term_scores,omitempty"`
	BestPeriod        string             `json:"best_period"`
	WorstPeriod       string             `json:"worst_period"`
	ConsistencyScore  float64            `json:"consistency_score"`
	TrendConfirmation string             `json:"trend_confirmation"`
	Rank              int                `json:"rank"`
}

// SummaryResponse is the market summary payload.
type SummaryResponse struct {
	TotalCryptos    int      `json:"total_cryptos"`
	Periods         []string `json:"periods"`
	LastUpdate      string   `json:"last_update"`
	TopPerformers   []string `json:"top_performers"`
	MarketSentiment string   `json:"market_sentiment"`
}

package entity

import (
	"time"
)

// Period identifies an observation horizon for percent-change data.
type Period string

const (
	Period1H  Period = "1h"
	Period24H Period = "24h"
	Period7D  Period = "7d"
	Period30D Period = "30d"
)

// AllPeriods lists every supported observation period.
func AllPeriods() []Period {
	return []Period{Period1H, Period24H, Period7D, Period30D}
}

// Valid reports whether the period is one of the supported horizons.
func (p Period) Valid() bool {
	switch p {
	case Period1H, Period24H, Period7D, Period30D:
		return true
	}
	return false
}

func (p Period) String() string {
	return string(p)
}

// ParsePeriods converts raw labels to periods, dropping anything unsupported.
func ParsePeriods(labels []string) []Period {
	var periods []Period
	for _, label := range labels {
		p := Period(label)
		if p.Valid() {
			periods = append(periods, p)
		}
	}
	return periods
}

// Crypto holds the raw market metrics for one asset. Optional metrics are
// pointers so an absent value is distinguishable from zero.
type Crypto struct {
	Symbol          string    `json:"symbol"`
	Name            string    `json:"name"`
	PriceUSD        float64   `json:"price_usd"`
	MarketCapUSD    *float64  `json:"market_cap_usd,omitempty"`
	Volume24hUSD    *float64  `json:"volume_24h_usd,omitempty"`
	PercentChange1h *float64  `json:"percent_change_1h,omitempty"`
	PercentChange24 *float64  `json:"percent_change_24h,omitempty"`
	PercentChange7d *float64  `json:"percent_change_7d,omitempty"`
	PercentChange30 *float64  `json:"percent_change_30d,omitempty"`
	MaxPrice1Y      *float64  `json:"max_price_1y,omitempty"`
	MinPrice1Y      *float64  `json:"min_price_1y,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}

// PercentChange returns the percent change for the given period, or nil when
// the data source did not supply it.
func (c *Crypto) PercentChange(period Period) *float64 {
	switch period {
	case Period1H:
		return c.PercentChange1h
	case Period24H:
		return c.PercentChange24
	case Period7D:
		return c.PercentChange7d
	case Period30D:
		return c.PercentChange30
	}
	return nil
}

// ScoredCrypto is a Crypto with the rebound scoring attached.
type ScoredCrypto struct {
	Crypto

	PerformanceScore      float64 `json:"performance_score"`
	DrawdownScore         float64 `json:"drawdown_score"`
	ReboundPotentialScore float64 `json:"rebound_potential_score"`
	MomentumScore         float64 `json:"momentum_score"`
	TotalScore            float64 `json:"total_score"`

	RecoveryPotential75 string  `json:"recovery_potential_75"`
	DrawdownPercentage  float64 `json:"drawdown_percentage"`
	Rank                int     `json:"rank"`
}

// MultiPeriodCrypto is the per-symbol result of the multi-period analysis.
type MultiPeriodCrypto struct {
	Symbol            string             `json:"symbol"`
	Name              string             `json:"name"`
	PriceUSD          float64            `json:"price_usd"`
	MarketCapUSD      *float64           `json:"market_cap_usd,omitempty"`
	AverageScore      float64            `json:"average_score"`
	LongTermAverage   *float64           `json:"long_term_average,omitempty"`
	PeriodScores      map[Period]float64 `json:"period_scores"`
	LongTermScores    map[Period]float64 `json:"long_term_scores,omitempty"`
	BestPeriod        Period             `json:"best_period"`
	WorstPeriod       Period             `json:"worst_period"`
	ConsistencyScore  float64            `json:"consistency_score"`
	TrendConfirmation string             `json:"trend_confirmation"`
	Rank              int                `json:"rank"`
}

// Trend confirmation labels comparing short-term and long-term averages.
const (
	TrendStrong       = "Strong"
	TrendAccelerating = "Accelerating"
	TrendCooling      = "Cooling"
	TrendDivergent    = "Divergent"
	TrendUnknown      = "Unknown"
)

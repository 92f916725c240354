package repository

import (
	"hash/fnv"
)

type syntheticYearlyRangeRepository struct{}

// NewSyntheticYearlyRangeRepository creates a yearly-range provider that
// derives a stable high/low band from the asset identifier. It stands in for
// a real historical price source, which CoinGecko's markets endpoint does not
// include; the derivation is deterministic per id so repeated fetches score
// identically.
func NewSyntheticYearlyRangeRepository() YearlyRangeRepository {
	return &syntheticYearlyRangeRepository{}
}

// GetRange returns a synthetic trailing-year high and low around the current
// price. The high lands in [1.2x, 2.19x] and the low in [0.3x, 0.79x].
func (r *syntheticYearlyRangeRepository) GetRange(id string, price float64) (float64, float64) {
	h := fnv.New32a()
	h.Write([]byte(id))
	sum := h.Sum32()

	high := price * (1.2 + float64(sum%100)/100)
	low := price * (0.3 + float64(sum%50)/100)
	return high, low
}

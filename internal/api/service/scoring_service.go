package service

import (
	"fmt"
	"math"
	"sort"

	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/logger"
	"golang-crypto-rebound/pkg/utils"
)

// Weights configures how much each sub-score contributes to the composite.
type Weights struct {
	Performance      float64
	Drawdown         float64
	ReboundPotential float64
	Momentum         float64
}

// DefaultWeights returns the production weighting. Rebound potential is the
// dominant factor.
func DefaultWeights() Weights {
	return Weights{
		Performance:      0.15,
		Drawdown:         0.15,
		ReboundPotential: 0.60,
		Momentum:         0.25,
	}
}

// ScoringService computes rebound scores for a batch of assets. It holds no
// state beyond its weights, so scoring is a pure function of its input.
type ScoringService interface {
	CalculateScores(cryptos []entity.Crypto, period entity.Period) []entity.ScoredCrypto
}

// NewScoringService creates a scorer with the given weights.
func NewScoringService(weights Weights, log *logger.Logger) ScoringService {
	return &scoringService{
		weights: weights,
		log:     log,
	}
}

type scoringService struct {
	weights Weights
	log     *logger.Logger
}

// CalculateScores scores every asset with a positive price, sorts the batch
// by total score descending, and assigns 1-based ranks. Assets without a
// positive price are dropped, not errored; missing optional metrics fall back
// to neutral defaults inside the individual sub-scores.
func (s *scoringService) CalculateScores(cryptos []entity.Crypto, period entity.Period) []entity.ScoredCrypto {
	scored := make([]entity.ScoredCrypto, 0, len(cryptos))
	for _, crypto := range cryptos {
		if crypto.PriceUSD <= 0 {
			continue
		}

		sc := entity.ScoredCrypto{Crypto: crypto}
		sc.PerformanceScore = s.performanceScore(&crypto, period)
		sc.DrawdownScore = s.drawdownScore(&crypto)
		sc.ReboundPotentialScore = s.reboundPotentialScore(&crypto)
		sc.MomentumScore = s.momentumScore(&crypto)
		sc.TotalScore = s.totalScore(&sc)
		sc.RecoveryPotential75 = s.recoveryPotential(&crypto)
		sc.DrawdownPercentage = s.drawdownPercentage(&crypto)

		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}

	return scored
}

// performanceScore maps the period's percent change onto [5, 100] around a
// neutral 50. Losses keep a floor of 5 rather than dropping to zero.
func (s *scoringService) performanceScore(crypto *entity.Crypto, period entity.Period) float64 {
	performance := 0.0
	if pc := crypto.PercentChange(period); pc != nil {
		performance = *pc
	} else if pc := crypto.PercentChange24; pc != nil {
		performance = *pc
	}

	if performance >= 0 {
		return math.Min(100, 50+performance*2)
	}
	return math.Max(5, 50+performance*2)
}

// drawdownScore rewards assets holding close to their yearly high. The curve
// steepens between 10% and 60% drawdown and flattens onto a floor of 5 beyond.
func (s *scoringService) drawdownScore(crypto *entity.Crypto) float64 {
	if crypto.MaxPrice1Y == nil || *crypto.MaxPrice1Y <= 0 {
		return 50.0
	}

	drawdown := (*crypto.MaxPrice1Y - crypto.PriceUSD) / *crypto.MaxPrice1Y * 100

	switch {
	case drawdown <= 10:
		return 100.0
	case drawdown <= 30:
		return 90.0 - (drawdown-10)*2
	case drawdown <= 60:
		return 50.0 - (drawdown-30)*1.5
	default:
		return math.Max(5.0, 20.0-(drawdown-60)*0.5)
	}
}

// reboundPotentialScore is the dominant factor: distance below the yearly
// high converted to upside, amplified for small caps and dampened for large
// caps.
func (s *scoringService) reboundPotentialScore(crypto *entity.Crypto) float64 {
	if crypto.MaxPrice1Y == nil || *crypto.MaxPrice1Y <= 0 || crypto.MarketCapUSD == nil {
		return 50.0
	}

	distanceFromHigh := (*crypto.MaxPrice1Y - crypto.PriceUSD) / *crypto.MaxPrice1Y * 100

	marketCapMillions := *crypto.MarketCapUSD / 1_000_000
	capMultiplier := 1.0
	switch {
	case marketCapMillions > 1000:
		capMultiplier = 0.8
	case marketCapMillions > 100:
		capMultiplier = 1.0
	default:
		capMultiplier = 1.2
	}

	var baseScore float64
	switch {
	case distanceFromHigh >= 80:
		baseScore = 100.0
	case distanceFromHigh >= 60:
		baseScore = 90.0 - (80-distanceFromHigh)*2
	case distanceFromHigh >= 40:
		baseScore = 70.0 - (60-distanceFromHigh)*1.5
	case distanceFromHigh >= 20:
		baseScore = 40.0 - (40-distanceFromHigh)*1
	default:
		baseScore = math.Max(20.0, 30.0-distanceFromHigh)
	}

	return math.Min(100.0, baseScore*capMultiplier)
}

// momentumScore compares 24h movement against the 7d trend and adjusts for
// volume. The volume factor is applied after the clamp, so a high-volume
// asset can score up to 120. Known quirk of the heuristic, kept as-is.
func (s *scoringService) momentumScore(crypto *entity.Crypto) float64 {
	shortTerm := 0.0
	if crypto.PercentChange24 != nil {
		shortTerm = *crypto.PercentChange24
	}
	mediumTerm := 0.0
	if crypto.PercentChange7d != nil {
		mediumTerm = *crypto.PercentChange7d
	}

	momentumTrend := shortTerm - mediumTerm/7

	volumeFactor := 1.0
	if crypto.Volume24hUSD != nil && crypto.MarketCapUSD != nil && *crypto.MarketCapUSD > 0 {
		volumeRatio := *crypto.Volume24hUSD / *crypto.MarketCapUSD
		if volumeRatio > 0.1 {
			volumeFactor = 1.2
		} else if volumeRatio < 0.01 {
			volumeFactor = 0.8
		}
	}

	baseScore := utils.Clamp(50+momentumTrend*5, 5, 100)

	return baseScore * volumeFactor
}

// totalScore applies the weight vector and rounds to one decimal.
func (s *scoringService) totalScore(crypto *entity.ScoredCrypto) float64 {
	total := crypto.PerformanceScore*s.weights.Performance +
		crypto.DrawdownScore*s.weights.Drawdown +
		crypto.ReboundPotentialScore*s.weights.ReboundPotential +
		crypto.MomentumScore*s.weights.Momentum

	return utils.RoundTo(total, 1)
}

// recoveryPotential renders the gain needed to reach 75% of the yearly high
// as a display string, bucketed above 100%.
func (s *scoringService) recoveryPotential(crypto *entity.Crypto) string {
	if crypto.MaxPrice1Y == nil || crypto.PriceUSD <= 0 {
		return "+62.0%"
	}

	targetPrice := *crypto.MaxPrice1Y * 0.75
	if crypto.PriceUSD >= targetPrice {
		return "+0%"
	}

	gainNeeded := (targetPrice - crypto.PriceUSD) / crypto.PriceUSD * 100

	switch {
	case gainNeeded > 500:
		return "+500%+"
	case gainNeeded > 300:
		return "+240%"
	case gainNeeded > 200:
		return "+200%"
	case gainNeeded > 150:
		return "+171%"
	case gainNeeded > 100:
		return fmt.Sprintf("+%d%%", int(gainNeeded))
	default:
		return fmt.Sprintf("+%.1f%%", gainNeeded)
	}
}

// drawdownPercentage reports the current decline from the yearly high.
func (s *scoringService) drawdownPercentage(crypto *entity.Crypto) float64 {
	if crypto.MaxPrice1Y == nil || *crypto.MaxPrice1Y <= 0 {
		return 0.0
	}

	drawdown := (*crypto.MaxPrice1Y - crypto.PriceUSD) / *crypto.MaxPrice1Y * 100
	return utils.RoundTo(drawdown, 1)
}

package service

import (
	"context"
	"math"
	"sort"
	"sync"

	"golang-crypto-rebound/internal/api/dto"
	"golang-crypto-rebound/internal/api/repository"
	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/common"
	"golang-crypto-rebound/pkg/logger"
	"golang-crypto-rebound/pkg/utils"
)

// AnalysisService runs the scorer across several observation periods and
// merges the results into a single consistency-aware ranking.
type AnalysisService interface {
	Analyze(ctx context.Context, shortPeriods, longPeriods []entity.Period, limit int) ([]dto.MultiPeriodCryptoResponse, error)
}

// NewAnalysisService creates a multi-period analysis service. batchSize
// controls how many assets are fetched per period; zero selects the default.
func NewAnalysisService(marketRepo repository.MarketDataRepository, scorer ScoringService, log *logger.Logger, batchSize int) AnalysisService {
	if batchSize <= 0 {
		batchSize = common.DefaultAnalysisBatchSize
	}
	return &analysisService{
		marketRepo: marketRepo,
		scorer:     scorer,
		log:        log,
		batchSize:  batchSize,
	}
}

type analysisService struct {
	marketRepo repository.MarketDataRepository
	scorer     ScoringService
	log        *logger.Logger
	batchSize  int
}

// symbolMeta is the display data observed in one period's batch. Batches can
// drift between fetches, so it is kept per period rather than per symbol.
type symbolMeta struct {
	name         string
	priceUSD     float64
	marketCapUSD *float64
}

// symbolAccumulator collects one symbol's per-period scores while the
// periods are being processed. It is finalized into a MultiPeriodCrypto once
// every period has completed.
type symbolAccumulator struct {
	symbol      string
	shortScores map[entity.Period]float64
	longScores  map[entity.Period]float64
	shortMeta   map[entity.Period]symbolMeta
	longMeta    map[entity.Period]symbolMeta
	shortSum    float64
	longSum     float64
	shortCount  int
	longCount   int
}

// metadata selects the reported name/price/market cap by requested period
// order, short before long. Completion order of the period fetches must not
// leak into the output, so the same rule as the best/worst tie-break applies.
func (acc *symbolAccumulator) metadata(shortPeriods, longPeriods []entity.Period) symbolMeta {
	for _, period := range shortPeriods {
		if meta, ok := acc.shortMeta[period]; ok {
			return meta
		}
	}
	for _, period := range longPeriods {
		if meta, ok := acc.longMeta[period]; ok {
			return meta
		}
	}
	return symbolMeta{}
}

// Analyze fetches and scores a batch per requested period, accumulates the
// total scores by symbol, and ranks the survivors of the coverage filter.
// Periods are processed concurrently; a failed period is logged and skipped
// without affecting the others.
func (s *analysisService) Analyze(ctx context.Context, shortPeriods, longPeriods []entity.Period, limit int) ([]dto.MultiPeriodCryptoResponse, error) {
	accumulators := make(map[string]*symbolAccumulator)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	runPeriod := func(period entity.Period, longTerm bool) {
		defer wg.Done()

		cryptos, err := s.marketRepo.GetMarkets(ctx, s.batchSize)
		if err != nil {
			s.log.WarnContext(ctx, "Skipping period after fetch failure",
				logger.StringField("period", period.String()), logger.ErrorField(err))
			return
		}
		scored := s.scorer.CalculateScores(cryptos, period)

		s.log.DebugContext(ctx, "Scored period batch",
			logger.StringField("period", period.String()), logger.IntField("count", len(scored)))

		mu.Lock()
		defer mu.Unlock()
		s.mergePeriod(accumulators, period, longTerm, scored)
	}

	for _, period := range shortPeriods {
		wg.Add(1)
		go runPeriod(period, false)
	}
	for _, period := range longPeriods {
		wg.Add(1)
		go runPeriod(period, true)
	}
	wg.Wait()

	// A symbol must have scored in a majority of the requested short periods.
	minShortPeriods := len(shortPeriods) / 2
	if minShortPeriods < 1 {
		minShortPeriods = 1
	}

	type rankedAccumulator struct {
		crypto     entity.MultiPeriodCrypto
		finalScore float64
	}

	var candidates []rankedAccumulator
	for _, acc := range accumulators {
		if acc.shortCount < minShortPeriods {
			continue
		}
		crypto, finalScore := s.finalize(acc, shortPeriods, longPeriods)
		candidates = append(candidates, rankedAccumulator{crypto: crypto, finalScore: finalScore})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].finalScore != candidates[j].finalScore {
			return candidates[i].finalScore > candidates[j].finalScore
		}
		return candidates[i].crypto.Symbol < candidates[j].crypto.Symbol
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]dto.MultiPeriodCryptoResponse, 0, len(candidates))
	for i, candidate := range candidates {
		candidate.crypto.Rank = i + 1
		result = append(result, toMultiPeriodResponse(candidate.crypto))
	}

	s.log.InfoContext(ctx, "Multi-period analysis completed", logger.IntField("count", len(result)))

	return result, nil
}

// mergePeriod folds one period's scored batch into the per-symbol
// accumulators. Callers serialize access to the map.
func (s *analysisService) mergePeriod(accumulators map[string]*symbolAccumulator, period entity.Period, longTerm bool, scored []entity.ScoredCrypto) {
	for _, crypto := range scored {
		acc, ok := accumulators[crypto.Symbol]
		if !ok {
			acc = &symbolAccumulator{
				symbol:      crypto.Symbol,
				shortScores: make(map[entity.Period]float64),
				longScores:  make(map[entity.Period]float64),
				shortMeta:   make(map[entity.Period]symbolMeta),
				longMeta:    make(map[entity.Period]symbolMeta),
			}
			accumulators[crypto.Symbol] = acc
		}

		meta := symbolMeta{name: crypto.Name, priceUSD: crypto.PriceUSD, marketCapUSD: crypto.MarketCapUSD}
		if longTerm {
			acc.longScores[period] = crypto.TotalScore
			acc.longMeta[period] = meta
			acc.longSum += crypto.TotalScore
			acc.longCount++
		} else {
			acc.shortScores[period] = crypto.TotalScore
			acc.shortMeta[period] = meta
			acc.shortSum += crypto.TotalScore
			acc.shortCount++
		}
	}
}

// finalize turns an accumulator into its response entity plus the ranking
// score used for ordering (short average plus consistency and trend bonuses).
func (s *analysisService) finalize(acc *symbolAccumulator, shortPeriods, longPeriods []entity.Period) (entity.MultiPeriodCrypto, float64) {
	shortAverage := acc.shortSum / float64(acc.shortCount)

	var longAverage *float64
	if acc.longCount > 0 {
		avg := acc.longSum / float64(acc.longCount)
		longAverage = &avg
	}

	consistency := 100.0
	if len(acc.shortScores) > 1 {
		scores := make([]float64, 0, len(acc.shortScores))
		for _, score := range acc.shortScores {
			scores = append(scores, score)
		}
		mean := utils.Mean(scores)
		stdDev := utils.PopStdDev(scores)
		consistency = math.Max(0, 100-(stdDev/math.Max(mean, 1))*100)
	}

	trend := trendConfirmation(shortAverage, longAverage)
	best, worst := bestWorstPeriods(acc, shortPeriods, longPeriods)

	consistencyBonus := (consistency / 100) * 5
	finalScore := shortAverage + consistencyBonus + trendBonus(trend)

	meta := acc.metadata(shortPeriods, longPeriods)
	crypto := entity.MultiPeriodCrypto{
		Symbol:            acc.symbol,
		Name:              meta.name,
		PriceUSD:          meta.priceUSD,
		MarketCapUSD:      meta.marketCapUSD,
		AverageScore:      shortAverage,
		LongTermAverage:   longAverage,
		PeriodScores:      acc.shortScores,
		LongTermScores:    acc.longScores,
		BestPeriod:        best,
		WorstPeriod:       worst,
		ConsistencyScore:  consistency,
		TrendConfirmation: trend,
	}
	return crypto, finalScore
}

// trendConfirmation classifies how the short-term average relates to the
// long-term one.
func trendConfirmation(shortAverage float64, longAverage *float64) string {
	if longAverage == nil {
		return entity.TrendUnknown
	}

	diff := shortAverage - *longAverage
	switch {
	case math.Abs(diff) <= 10:
		return entity.TrendStrong
	case diff > 0 && diff <= 20:
		return entity.TrendAccelerating
	case diff < 0 && -diff <= 20:
		return entity.TrendCooling
	default:
		return entity.TrendDivergent
	}
}

func trendBonus(trend string) float64 {
	switch trend {
	case entity.TrendStrong:
		return 3
	case entity.TrendAccelerating:
		return 2
	case entity.TrendCooling:
		return 1
	default:
		return 0
	}
}

// bestWorstPeriods picks the highest and lowest scoring periods across the
// short and long maps. Periods are visited in requested order, short before
// long, and the earlier period wins on equal scores.
func bestWorstPeriods(acc *symbolAccumulator, shortPeriods, longPeriods []entity.Period) (entity.Period, entity.Period) {
	var (
		best, worst entity.Period
		bestScore   float64
		worstScore  float64
		found       bool
	)

	visit := func(period entity.Period, score float64) {
		if !found {
			best, worst = period, period
			bestScore, worstScore = score, score
			found = true
			return
		}
		if score > bestScore {
			best, bestScore = period, score
		}
		if score < worstScore {
			worst, worstScore = period, score
		}
	}

	for _, period := range shortPeriods {
		if score, ok := acc.shortScores[period]; ok {
			visit(period, score)
		}
	}
	for _, period := range longPeriods {
		if score, ok := acc.longScores[period]; ok {
			visit(period, score)
		}
	}

	if !found {
		if len(shortPeriods) > 0 {
			return shortPeriods[0], shortPeriods[0]
		}
		return "unknown", "unknown"
	}
	return best, worst
}

func toMultiPeriodResponse(crypto entity.MultiPeriodCrypto) dto.MultiPeriodCryptoResponse {
	resp := dto.MultiPeriodCryptoResponse{
		Symbol:            crypto.Symbol,
		Name:              crypto.Name,
		PriceUSD:          crypto.PriceUSD,
		MarketCapUSD:      crypto.MarketCapUSD,
		AverageScore:      utils.RoundTo(crypto.AverageScore, 2),
		PeriodScores:      periodMapToStrings(crypto.PeriodScores),
		BestPeriod:        crypto.BestPeriod.String(),
		WorstPeriod:       crypto.WorstPeriod.String(),
		ConsistencyScore:  utils.RoundTo(crypto.ConsistencyScore, 1),
		TrendConfirmation: crypto.TrendConfirmation,
		Rank:              crypto.Rank,
	}
	if crypto.LongTermAverage != nil {
		rounded := utils.RoundTo(*crypto.LongTermAverage, 2)
		resp.LongTermAverage = &rounded
	}
	if len(crypto.LongTermScores) > 0 {
		resp.LongTermScores = periodMapToStrings(crypto.LongTermScores)
	}
	return resp
}

func periodMapToStrings(scores map[entity.Period]float64) map[string]float64 {
	result := make(map[string]float64, len(scores))
	for period, score := range scores {
		result[period.String()] = score
	}
	return result
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang-crypto-rebound/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMarketRepo serves a fixed batch, optionally failing some calls.
type stubMarketRepo struct {
	mu       sync.Mutex
	batch    []entity.Crypto
	calls    int
	failures int
	err      error
}

func (s *stubMarketRepo) GetMarkets(_ context.Context, _ int) ([]entity.Crypto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failures > 0 {
		s.failures--
		return nil, s.err
	}
	return s.batch, nil
}

func analysisFixtureBatch() []entity.Crypto {
	return []entity.Crypto{
		fullMetricsCrypto("AAA", 25, 100, 50e6, 10e6, 10, 21),
		fullMetricsCrypto("BBB", 90, 100, 2e9, 10e6, -5, 0),
		fullMetricsCrypto("CCC", 50, 100, 500e6, 25e6, 0, 0),
	}
}

func TestAnalyzeRanksAndLimits(t *testing.T) {
	repo := &stubMarketRepo{batch: analysisFixtureBatch()}
	scorer := NewScoringService(DefaultWeights(), testLogger())
	svc := NewAnalysisService(repo, scorer, testLogger(), 200)

	shortPeriods := []entity.Period{entity.Period24H, entity.Period7D}
	longPeriods := []entity.Period{entity.Period30D}

	result, err := svc.Analyze(context.Background(), shortPeriods, longPeriods, 15)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// one fetch+score per requested period
	assert.Equal(t, 3, repo.calls)

	for i, crypto := range result {
		assert.Equal(t, i+1, crypto.Rank)
		assert.Len(t, crypto.PeriodScores, 2)
		assert.Contains(t, crypto.PeriodScores, "24h")
		assert.Contains(t, crypto.PeriodScores, "7d")
		require.NotNil(t, crypto.LongTermAverage)
		assert.Contains(t, crypto.LongTermScores, "30d")
		assert.NotEmpty(t, crypto.BestPeriod)
		assert.NotEmpty(t, crypto.WorstPeriod)
	}
}

func TestAnalyzeTruncatesToLimit(t *testing.T) {
	repo := &stubMarketRepo{batch: analysisFixtureBatch()}
	scorer := NewScoringService(DefaultWeights(), testLogger())
	svc := NewAnalysisService(repo, scorer, testLogger(), 200)

	result, err := svc.Analyze(context.Background(), []entity.Period{entity.Period24H}, nil, 2)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAnalyzeSkipsFailedPeriods(t *testing.T) {
	repo := &stubMarketRepo{
		batch:    analysisFixtureBatch(),
		failures: 1,
		err:      errors.New("upstream timeout"),
	}
	scorer := NewScoringService(DefaultWeights(), testLogger())
	svc := NewAnalysisService(repo, scorer, testLogger(), 200)

	shortPeriods := []entity.Period{entity.Period24H, entity.Period7D}

	result, err := svc.Analyze(context.Background(), shortPeriods, nil, 15)
	require.NoError(t, err)

	// one of two short periods failed; a single score still meets the
	// majority threshold max(1, 2/2) = 1
	require.Len(t, result, 3)
	for _, crypto := range result {
		assert.Len(t, crypto.PeriodScores, 1)
		assert.Equal(t, 100.0, crypto.ConsistencyScore)
		assert.Equal(t, entity.TrendUnknown, crypto.TrendConfirmation)
	}
}

func TestAnalyzeReturnsNothingWhenAllPeriodsFail(t *testing.T) {
	repo := &stubMarketRepo{
		failures: 2,
		err:      errors.New("upstream down"),
	}
	scorer := NewScoringService(DefaultWeights(), testLogger())
	svc := NewAnalysisService(repo, scorer, testLogger(), 200)

	result, err := svc.Analyze(context.Background(), []entity.Period{entity.Period24H, entity.Period7D}, nil, 15)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestFinalizeConsistency(t *testing.T) {
	svc := &analysisService{log: testLogger()}

	acc := &symbolAccumulator{
		symbol: "AAA",
		shortScores: map[entity.Period]float64{
			entity.Period24H: 80,
			entity.Period7D:  60,
		},
		longScores: map[entity.Period]float64{},
		shortMeta: map[entity.Period]symbolMeta{
			entity.Period24H: {name: "AAA", priceUSD: 25},
		},
		longMeta:   map[entity.Period]symbolMeta{},
		shortSum:   140,
		shortCount: 2,
	}

	crypto, finalScore := svc.finalize(acc, []entity.Period{entity.Period24H, entity.Period7D}, nil)

	// mean 70, population stddev 10 -> 100 - 10/70*100
	assert.InDelta(t, 85.7142857, crypto.ConsistencyScore, 1e-6)
	assert.InDelta(t, 70.0, crypto.AverageScore, 1e-9)
	assert.Equal(t, entity.Period24H, crypto.BestPeriod)
	assert.Equal(t, entity.Period7D, crypto.WorstPeriod)
	assert.Equal(t, entity.TrendUnknown, crypto.TrendConfirmation)

	// short average + consistency bonus, no trend bonus
	assert.InDelta(t, 70+85.7142857/100*5, finalScore, 1e-6)
}

func TestFinalizeMetadataFollowsRequestedPeriodOrder(t *testing.T) {
	svc := &analysisService{log: testLogger()}

	scoredAt := func(price, score float64) []entity.ScoredCrypto {
		return []entity.ScoredCrypto{{
			Crypto:     entity.Crypto{Symbol: "AAA", Name: "Alpha", PriceUSD: price},
			TotalScore: score,
		}}
	}

	shortPeriods := []entity.Period{entity.Period24H, entity.Period7D}
	longPeriods := []entity.Period{entity.Period30D}

	// merge in reverse of the requested order, with the per-period batches
	// observing drifting prices
	accumulators := make(map[string]*symbolAccumulator)
	svc.mergePeriod(accumulators, entity.Period30D, true, scoredAt(30, 40))
	svc.mergePeriod(accumulators, entity.Period7D, false, scoredAt(20, 50))
	svc.mergePeriod(accumulators, entity.Period24H, false, scoredAt(10, 60))

	crypto, _ := svc.finalize(accumulators["AAA"], shortPeriods, longPeriods)

	// the first requested short period's batch wins, not the first merged
	assert.Equal(t, 10.0, crypto.PriceUSD)
	assert.Equal(t, "Alpha", crypto.Name)

	// a symbol absent from the first short period falls through to the next
	// requested period that saw it
	partial := make(map[string]*symbolAccumulator)
	svc.mergePeriod(partial, entity.Period30D, true, scoredAt(30, 40))
	svc.mergePeriod(partial, entity.Period7D, false, scoredAt(20, 50))

	crypto, _ = svc.finalize(partial["AAA"], shortPeriods, longPeriods)
	assert.Equal(t, 20.0, crypto.PriceUSD)
}

func TestTrendConfirmation(t *testing.T) {
	tests := []struct {
		name     string
		short    float64
		long     *float64
		expected string
	}{
		{"no long-term data", 70, nil, entity.TrendUnknown},
		{"small gap holds strong", 70, fptr(65), entity.TrendStrong},
		{"short ahead accelerating", 80, fptr(65), entity.TrendAccelerating},
		{"short behind cooling", 60, fptr(75), entity.TrendCooling},
		{"large gap divergent", 80, fptr(55), entity.TrendDivergent},
		{"large negative gap divergent", 40, fptr(75), entity.TrendDivergent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, trendConfirmation(tc.short, tc.long))
		})
	}
}

func TestTrendBonus(t *testing.T) {
	assert.Equal(t, 3.0, trendBonus(entity.TrendStrong))
	assert.Equal(t, 2.0, trendBonus(entity.TrendAccelerating))
	assert.Equal(t, 1.0, trendBonus(entity.TrendCooling))
	assert.Equal(t, 0.0, trendBonus(entity.TrendDivergent))
	assert.Equal(t, 0.0, trendBonus(entity.TrendUnknown))
}

func TestBestWorstPeriods(t *testing.T) {
	shortPeriods := []entity.Period{entity.Period24H, entity.Period7D}
	longPeriods := []entity.Period{entity.Period30D}

	acc := &symbolAccumulator{
		shortScores: map[entity.Period]float64{
			entity.Period24H: 80,
			entity.Period7D:  60,
		},
		longScores: map[entity.Period]float64{
			entity.Period30D: 70,
		},
	}
	best, worst := bestWorstPeriods(acc, shortPeriods, longPeriods)
	assert.Equal(t, entity.Period24H, best)
	assert.Equal(t, entity.Period7D, worst)

	// ties resolve to the earliest requested period
	tie := &symbolAccumulator{
		shortScores: map[entity.Period]float64{
			entity.Period24H: 50,
			entity.Period7D:  50,
		},
		longScores: map[entity.Period]float64{},
	}
	best, worst = bestWorstPeriods(tie, shortPeriods, longPeriods)
	assert.Equal(t, entity.Period24H, best)
	assert.Equal(t, entity.Period24H, worst)

	// no scores at all falls back to the first short period
	empty := &symbolAccumulator{
		shortScores: map[entity.Period]float64{},
		longScores:  map[entity.Period]float64{},
	}
	best, worst = bestWorstPeriods(empty, shortPeriods, longPeriods)
	assert.Equal(t, entity.Period24H, best)
	assert.Equal(t, entity.Period24H, worst)

	best, worst = bestWorstPeriods(empty, nil, longPeriods)
	assert.Equal(t, entity.Period("unknown"), best)
	assert.Equal(t, entity.Period("unknown"), worst)
}

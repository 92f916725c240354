package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

type countingMarketRepo struct {
	calls int
	batch []entity.Crypto
	err   error
}

func (r *countingMarketRepo) GetMarkets(_ context.Context, _ int) ([]entity.Crypto, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.batch, nil
}

func TestMarketDataCacheServesFromMemory(t *testing.T) {
	inner := &countingMarketRepo{batch: []entity.Crypto{{Symbol: "BTC", Name: "Bitcoin", PriceUSD: 50000}}}
	cache := NewMarketDataCache(inner, nil, time.Minute, time.Minute, testLogger())

	first, err := cache.GetMarkets(context.Background(), 100)
	require.NoError(t, err)
	second, err := cache.GetMarkets(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestMarketDataCacheKeysByBatchSize(t *testing.T) {
	inner := &countingMarketRepo{batch: []entity.Crypto{{Symbol: "BTC", Name: "Bitcoin", PriceUSD: 50000}}}
	cache := NewMarketDataCache(inner, nil, time.Minute, time.Minute, testLogger())

	_, err := cache.GetMarkets(context.Background(), 100)
	require.NoError(t, err)
	_, err = cache.GetMarkets(context.Background(), 200)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestMarketDataCacheRefreshBypassesCache(t *testing.T) {
	inner := &countingMarketRepo{batch: []entity.Crypto{{Symbol: "BTC", Name: "Bitcoin", PriceUSD: 50000}}}
	cache := NewMarketDataCache(inner, nil, time.Minute, time.Minute, testLogger())

	_, err := cache.GetMarkets(context.Background(), 100)
	require.NoError(t, err)
	_, err = cache.Refresh(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestMarketDataCachePropagatesOriginError(t *testing.T) {
	originErr := errors.New("origin down")
	inner := &countingMarketRepo{err: originErr}
	cache := NewMarketDataCache(inner, nil, time.Minute, time.Minute, testLogger())

	_, err := cache.GetMarkets(context.Background(), 100)
	assert.ErrorIs(t, err, originErr)
}

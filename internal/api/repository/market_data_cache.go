package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/common"
	"golang-crypto-rebound/pkg/logger"
	redisPkg "golang-crypto-rebound/pkg/redis"

	"github.com/patrickmn/go-cache"
)

// MarketDataCache is a read-through cache in front of a market-data
// repository: an in-process go-cache first, then Redis when configured, then
// the origin. Cache failures degrade to a direct fetch and never fail the
// request.
type MarketDataCache struct {
	inner         MarketDataRepository
	log           *logger.Logger
	inmemoryCache *cache.Cache
	redisClient   *redisPkg.Client
	ttl           time.Duration
}

// NewMarketDataCache creates the cache decorator. redisClient may be nil, in
// which case only the in-process layer is used.
func NewMarketDataCache(inner MarketDataRepository, redisClient *redisPkg.Client, ttl, cleanupInterval time.Duration, log *logger.Logger) *MarketDataCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &MarketDataCache{
		inner:         inner,
		log:           log,
		inmemoryCache: cache.New(ttl, cleanupInterval),
		redisClient:   redisClient,
		ttl:           ttl,
	}
}

// GetMarkets returns a cached batch for the given size, fetching from the
// origin on a miss.
func (c *MarketDataCache) GetMarkets(ctx context.Context, limit int) ([]entity.Crypto, error) {
	key := fmt.Sprintf(common.RedisKeyMarketData, limit)

	if cached, found := c.inmemoryCache.Get(key); found {
		if cryptos, ok := cached.([]entity.Crypto); ok {
			return cryptos, nil
		}
	}

	if cryptos, ok := c.getFromRedis(ctx, key); ok {
		c.inmemoryCache.Set(key, cryptos, c.ttl)
		return cryptos, nil
	}

	return c.Refresh(ctx, limit)
}

// Refresh bypasses both cache layers, fetches from the origin, and stores the
// result back.
func (c *MarketDataCache) Refresh(ctx context.Context, limit int) ([]entity.Crypto, error) {
	cryptos, err := c.inner.GetMarkets(ctx, limit)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(common.RedisKeyMarketData, limit)
	c.inmemoryCache.Set(key, cryptos, c.ttl)
	c.setToRedis(ctx, key, cryptos)

	return cryptos, nil
}

func (c *MarketDataCache) getFromRedis(ctx context.Context, key string) ([]entity.Crypto, bool) {
	if c.redisClient == nil {
		return nil, false
	}

	payload, err := c.redisClient.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var cryptos []entity.Crypto
	if err := json.Unmarshal(payload, &cryptos); err != nil {
		c.log.WarnContext(ctx, "Failed to decode cached market data", logger.ErrorField(err), logger.StringField("key", key))
		return nil, false
	}

	return cryptos, true
}

func (c *MarketDataCache) setToRedis(ctx context.Context, key string, cryptos []entity.Crypto) {
	if c.redisClient == nil {
		return
	}

	payload, err := json.Marshal(cryptos)
	if err != nil {
		c.log.WarnContext(ctx, "Failed to encode market data for cache", logger.ErrorField(err), logger.StringField("key", key))
		return
	}

	if err := c.redisClient.Client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "Failed to store market data in redis", logger.ErrorField(err), logger.StringField("key", key))
	}
}

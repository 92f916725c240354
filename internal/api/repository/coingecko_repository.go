package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang-crypto-rebound/internal/api/config"
	"golang-crypto-rebound/internal/api/dto"
	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type coinGeckoRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	rangeRepo      YearlyRangeRepository
}

// NewCoinGeckoRepository creates a market-data repository backed by the
// CoinGecko /coins/markets endpoint.
func NewCoinGeckoRepository(cfg *config.Config, log *logger.Logger, rangeRepo YearlyRangeRepository) MarketDataRepository {
	timeout := cfg.CoinGecko.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxPerMinute := cfg.CoinGecko.MaxRequestPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 30
	}
	requestLimiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), 1)
	return &coinGeckoRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: requestLimiter,
		rangeRepo:      rangeRepo,
	}
}

// GetMarkets fetches the top assets by market cap with the percent-change
// columns needed by the scorer.
func (r *coinGeckoRepository) GetMarkets(ctx context.Context, limit int) ([]entity.Crypto, error) {
	params := url.Values{}
	params.Set("vs_currency", r.cfg.CoinGecko.VsCurrency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("page", "1")
	params.Set("sparkline", "false")
	params.Set("price_change_percentage", "1h,24h,7d,30d")

	endpoint := r.cfg.CoinGecko.BaseURL + "/coins/markets?" + params.Encode()
	body, err := r.sendRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}

	var markets []dto.CoinGeckoMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		return nil, fmt.Errorf("failed to decode coingecko response: %w", err)
	}

	now := time.Now().UTC()
	cryptos := make([]entity.Crypto, 0, len(markets))
	for _, m := range markets {
		var price float64
		if m.CurrentPrice != nil {
			price = *m.CurrentPrice
		}

		crypto := entity.Crypto{
			Symbol:          strings.ToUpper(m.Symbol),
			Name:            m.Name,
			PriceUSD:        price,
			MarketCapUSD:    m.MarketCap,
			Volume24hUSD:    m.TotalVolume,
			PercentChange1h: m.PriceChangePct1h,
			PercentChange24: m.PriceChangePct24h,
			PercentChange7d: m.PriceChangePct7d,
			PercentChange30: m.PriceChangePct30d,
			LastUpdated:     now,
		}

		if price > 0 {
			high, low := r.rangeRepo.GetRange(m.ID, price)
			crypto.MaxPrice1Y = &high
			crypto.MinPrice1Y = &low
		}

		cryptos = append(cryptos, crypto)
	}

	r.log.DebugContext(ctx, "Fetched market data", logger.IntField("count", len(cryptos)))

	return cryptos, nil
}

func (r *coinGeckoRepository) sendRequest(ctx context.Context, method string, url string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", url),
		zap.Int("max_request_per_minute", r.cfg.CoinGecko.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to CoinGecko API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read CoinGecko response body", fields...)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "CoinGecko API returned non-200 status", fields...)
		return nil, fmt.Errorf("coingecko request failed with status %d", resp.StatusCode)
	}

	return body, nil
}

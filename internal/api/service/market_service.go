package service

import (
	"context"
	"errors"
	"time"

	"golang-crypto-rebound/internal/api/dto"
	"golang-crypto-rebound/internal/api/repository"
	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/common"
	"golang-crypto-rebound/pkg/logger"
)

// ErrNoMarketData signals that the upstream source returned no usable data.
// The delivery layer maps it to a service-unavailable response.
var ErrNoMarketData = errors.New("cryptocurrency market data is unavailable")

// MarketService serves the single-period ranking and the market summary.
type MarketService interface {
	GetRanking(ctx context.Context, period entity.Period, limit, offset int) ([]dto.CryptoResponse, error)
	GetSummary(ctx context.Context) (*dto.SummaryResponse, error)
}

// NewMarketService creates a market service.
func NewMarketService(marketRepo repository.MarketDataRepository, scorer ScoringService, log *logger.Logger) MarketService {
	return &marketService{
		marketRepo: marketRepo,
		scorer:     scorer,
		log:        log,
	}
}

type marketService struct {
	marketRepo repository.MarketDataRepository
	scorer     ScoringService
	log        *logger.Logger
}

// GetRanking scores a batch for the period and returns the requested page.
// The fetch is padded beyond limit+offset so the page is cut from a broader
// ranked field.
func (s *marketService) GetRanking(ctx context.Context, period entity.Period, limit, offset int) ([]dto.CryptoResponse, error) {
	cryptos, err := s.marketRepo.GetMarkets(ctx, limit+offset+common.DefaultRankingFetchPadding)
	if err != nil {
		return nil, err
	}
	if len(cryptos) == 0 {
		return nil, ErrNoMarketData
	}

	scored := s.scorer.CalculateScores(cryptos, period)

	if offset >= len(scored) {
		return []dto.CryptoResponse{}, nil
	}
	end := offset + limit
	if end > len(scored) {
		end = len(scored)
	}
	page := scored[offset:end]

	result := make([]dto.CryptoResponse, 0, len(page))
	for _, crypto := range page {
		result = append(result, toCryptoResponse(crypto))
	}

	s.log.InfoContext(ctx, "Returning crypto ranking",
		logger.StringField("period", period.String()), logger.IntField("count", len(result)))

	return result, nil
}

// GetSummary reports batch-level counts, the top five symbols by 24h score,
// and a sentiment label derived from the mean 24h percent change.
func (s *marketService) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	cryptos, err := s.marketRepo.GetMarkets(ctx, common.DefaultSummaryBatchSize)
	if err != nil {
		return nil, err
	}
	if len(cryptos) == 0 {
		return nil, ErrNoMarketData
	}

	scored := s.scorer.CalculateScores(cryptos, entity.Period24H)
	topPerformers := make([]string, 0, 5)
	for _, crypto := range scored {
		if len(topPerformers) == 5 {
			break
		}
		topPerformers = append(topPerformers, crypto.Symbol)
	}

	totalChange := 0.0
	for _, crypto := range cryptos {
		if crypto.PercentChange24 != nil {
			totalChange += *crypto.PercentChange24
		}
	}
	avgChange := totalChange / float64(len(cryptos))

	periods := make([]string, 0, len(entity.AllPeriods()))
	for _, period := range entity.AllPeriods() {
		periods = append(periods, period.String())
	}

	return &dto.SummaryResponse{
		TotalCryptos:    len(cryptos),
		Periods:         periods,
		LastUpdate:      time.Now().UTC().Format(time.RFC3339),
		TopPerformers:   topPerformers,
		MarketSentiment: marketSentiment(avgChange),
	}, nil
}

// marketSentiment buckets the mean 24h percent change into a label.
func marketSentiment(avgChange float64) string {
	switch {
	case avgChange > 2:
		return "Very Positive"
	case avgChange > 0:
		return "Positive"
	case avgChange > -2:
		return "Neutral"
	default:
		return "Negative"
	}
}

func toCryptoResponse(crypto entity.ScoredCrypto) dto.CryptoResponse {
	return dto.CryptoResponse{
		Symbol:          crypto.Symbol,
		Name:            crypto.Name,
		PriceUSD:        crypto.PriceUSD,
		MarketCapUSD:    crypto.MarketCapUSD,
		Volume24hUSD:    crypto.Volume24hUSD,
		PercentChange1h: crypto.PercentChange1h,
		PercentChange24: crypto.PercentChange24,
		PercentChange7d: crypto.PercentChange7d,
		PercentChange30: crypto.PercentChange30,
		MaxPrice1Y:      crypto.MaxPrice1Y,
		MinPrice1Y:      crypto.MinPrice1Y,

		PerformanceScore:      crypto.PerformanceScore,
		DrawdownScore:         crypto.DrawdownScore,
		ReboundPotentialScore: crypto.ReboundPotentialScore,
		MomentumScore:         crypto.MomentumScore,
		TotalScore:            crypto.TotalScore,

		RecoveryPotential75: crypto.RecoveryPotential75,
		DrawdownPercentage:  crypto.DrawdownPercentage,
		Rank:                crypto.Rank,
		LastUpdated:         crypto.LastUpdated.Format(time.RFC3339),
	}
}

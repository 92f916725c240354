package service

import (
	"context"
	"fmt"
	"time"

	"golang-crypto-rebound/internal/api/repository"
	"golang-crypto-rebound/pkg/common"
	"golang-crypto-rebound/pkg/logger"

	"github.com/robfig/cron/v3"
)

// RefresherService periodically re-fetches the standard market batches so
// interactive requests mostly hit warm cache entries.
type RefresherService interface {
	Start(ctx context.Context)
}

// NewRefresherService creates a refresher driven by a cron expression.
func NewRefresherService(marketCache *repository.MarketDataCache, log *logger.Logger, cronExpression string, batchSize int) (RefresherService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cronExpression)
	if err != nil {
		return nil, fmt.Errorf("invalid refresher cron expression %q: %w", cronExpression, err)
	}
	if batchSize <= 0 {
		batchSize = common.DefaultAnalysisBatchSize
	}
	return &refresherService{
		marketCache: marketCache,
		log:         log,
		schedule:    schedule,
		batchSize:   batchSize,
	}, nil
}

type refresherService struct {
	marketCache *repository.MarketDataCache
	log         *logger.Logger
	schedule    cron.Schedule
	batchSize   int
}

// Start runs the refresh loop until the context is canceled.
func (s *refresherService) Start(ctx context.Context) {
	s.log.Info("Market data refresher started", logger.IntField("batch_size", s.batchSize))

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("Market data refresher stopped")
			return
		case <-timer.C:
			s.refresh(ctx)
		}
	}
}

func (s *refresherService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := s.marketCache.Refresh(refreshCtx, s.batchSize); err != nil {
		s.log.Warn("Market data refresh failed", logger.ErrorField(err))
		return
	}
	s.log.Debug("Market data refreshed", logger.IntField("batch_size", s.batchSize))
}

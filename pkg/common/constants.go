package common

const (
	// RedisKeyMarketData is the cache key for a fetched market batch, keyed by
	// the requested batch size.
	RedisKeyMarketData = "market_data:%d"

	// DefaultRankingFetchPadding is how many extra records are fetched beyond
	// limit+offset so the ranking slice is drawn from a broader field.
	DefaultRankingFetchPadding = 50

	// DefaultAnalysisBatchSize is the per-period batch size used by the
	// multi-period analysis.
	DefaultAnalysisBatchSize = 200

	// DefaultSummaryBatchSize is the batch size behind the market summary.
	DefaultSummaryBatchSize = 100
)

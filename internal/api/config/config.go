package config

import (
	"time"

	"golang-crypto-rebound/pkg/config"
)

// CoinGecko holds the configuration for the CoinGecko markets API.
type CoinGecko struct {
	BaseURL             string        `mapstructure:"base_url"`
	VsCurrency          string        `mapstructure:"vs_currency"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Cache holds the market-data cache configuration.
type Cache struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Analysis holds tuning knobs for the multi-period analysis.
type Analysis struct {
	BatchSize int `mapstructure:"batch_size"`
}

// Refresher holds the cache warm-up schedule.
type Refresher struct {
	Enabled        bool   `mapstructure:"enabled"`
	CronExpression string `mapstructure:"cron_expression"`
	BatchSize      int    `mapstructure:"batch_size"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	Redis     config.Redis  `mapstructure:"redis"`
	API       config.API    `mapstructure:"api"`
	CoinGecko CoinGecko     `mapstructure:"coingecko"`
	Cache     Cache         `mapstructure:"cache"`
	Analysis  Analysis      `mapstructure:"analysis"`
	Refresher Refresher     `mapstructure:"refresher"`
}

// Load loads the API service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

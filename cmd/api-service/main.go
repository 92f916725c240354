package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-crypto-rebound/internal/api/config"
	delivery "golang-crypto-rebound/internal/api/delivery/http"
	_ "golang-crypto-rebound/internal/api/docs"
	"golang-crypto-rebound/internal/api/repository"
	"golang-crypto-rebound/internal/api/service"
	"golang-crypto-rebound/pkg/logger"
	redisPkg "golang-crypto-rebound/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the ranking API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting CryptoRebound API Service", logger.Field("name", cfg.App.Name))

	// Initialize Redis when configured; the cache falls back to its
	// in-process layer without it.
	var redisClient *redisPkg.Client
	if cfg.Redis.Enabled {
		redisCfg := redisPkg.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err = redisPkg.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	}

	// Initialize repositories
	rangeRepo := repository.NewSyntheticYearlyRangeRepository()
	coinGeckoRepo := repository.NewCoinGeckoRepository(cfg, appLogger, rangeRepo)
	marketCache := repository.NewMarketDataCache(coinGeckoRepo, redisClient, cfg.Cache.TTL, cfg.Cache.CleanupInterval, appLogger)

	// Initialize services
	scoringSvc := service.NewScoringService(service.DefaultWeights(), appLogger)
	marketSvc := service.NewMarketService(marketCache, scoringSvc, appLogger)
	analysisSvc := service.NewAnalysisService(marketCache, scoringSvc, appLogger, cfg.Analysis.BatchSize)

	// Start the cache refresher
	if cfg.Refresher.Enabled {
		refresherSvc, err := service.NewRefresherService(marketCache, appLogger, cfg.Refresher.CronExpression, cfg.Refresher.BatchSize)
		if err != nil {
			appLogger.Fatal("Failed to initialize refresher", logger.ErrorField(err))
		}
		go refresherSvc.Start(ctx)
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize handlers and routes
	cryptoHandler := delivery.NewCryptoHandler(marketSvc, analysisSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	apiV1.GET("", cryptoHandler.Root)
	cryptosGroup := apiV1.Group("/cryptos")
	cryptoHandler.RegisterRoutes(cryptosGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title CryptoRebound Ranking API
// @version 1.0
// @description Scores and ranks cryptocurrencies by rebound potential.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}

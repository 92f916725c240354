package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-crypto-rebound/internal/api/dto"
	"golang-crypto-rebound/internal/api/service"
	"golang-crypto-rebound/internal/entity"
	"golang-crypto-rebound/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CryptoHandler handles HTTP requests for rankings and analysis.
type CryptoHandler struct {
	marketService   service.MarketService
	analysisService service.AnalysisService
	logger          *logger.Logger
}

// NewCryptoHandler creates a new CryptoHandler.
func NewCryptoHandler(marketService service.MarketService, analysisService service.AnalysisService, logger *logger.Logger) *CryptoHandler {
	return &CryptoHandler{
		marketService:   marketService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// RegisterRoutes registers the crypto routes to the Echo group.
func (h *CryptoHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ranking", h.GetRanking)
	g.GET("/multi-period-analysis", h.GetMultiPeriodAnalysis)
	g.GET("/summary", h.GetSummary)
}

// GetRanking godoc
// @Summary Get cryptocurrency ranking
// @Description Get cryptocurrencies ranked by rebound score for one period
// @Tags cryptos
// @Produce json
// @Param period query string false "Observation period" default(24h)
// @Param limit query int false "Number of results" default(50)
// @Param offset query int false "Pagination offset" default(0)
// @Success 200 {array} dto.CryptoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /cryptos/ranking [get]
func (h *CryptoHandler) GetRanking(c echo.Context) error {
	period := entity.Period24H
	if raw := c.QueryParam("period"); raw != "" {
		period = entity.Period(raw)
		if !period.Valid() {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid period: " + raw})
		}
	}

	limit, err := queryInt(c, "limit", 50, 1, 1000)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}
	offset, err := queryInt(c, "offset", 0, 0, 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	result, err := h.marketService.GetRanking(c.Request().Context(), period, limit, offset)
	if err != nil {
		return h.handleServiceError(c, err, "Failed to get ranking")
	}

	return c.JSON(http.StatusOK, result)
}

// GetMultiPeriodAnalysis godoc
// @Summary Get multi-period analysis
// @Description Get top cryptocurrencies analyzed across several periods
// @Tags cryptos
// @Produce json
// @Param limit query int false "Number of top cryptos" default(15)
// @Param short_periods query []string false "Short-term periods" collectionFormat(multi)
// @Param long_periods query []string false "Long-term periods" collectionFormat(multi)
// @Success 200 {array} dto.MultiPeriodCryptoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cryptos/multi-period-analysis [get]
func (h *CryptoHandler) GetMultiPeriodAnalysis(c echo.Context) error {
	limit, err := queryInt(c, "limit", 15, 5, 50)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	shortPeriods := []entity.Period{entity.Period24H, entity.Period7D}
	if raw := c.QueryParams()["short_periods"]; len(raw) > 0 {
		shortPeriods = entity.ParsePeriods(raw)
		if len(shortPeriods) == 0 {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No valid short-term period requested"})
		}
	}

	longPeriods := []entity.Period{entity.Period30D}
	if raw := c.QueryParams()["long_periods"]; len(raw) > 0 {
		longPeriods = entity.ParsePeriods(raw)
	}

	result, err := h.analysisService.Analyze(c.Request().Context(), shortPeriods, longPeriods, limit)
	if err != nil {
		return h.handleServiceError(c, err, "Multi-period analysis failed")
	}

	return c.JSON(http.StatusOK, result)
}

// GetSummary godoc
// @Summary Get market summary
// @Description Get aggregate counts, top performers, and market sentiment
// @Tags cryptos
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /cryptos/summary [get]
func (h *CryptoHandler) GetSummary(c echo.Context) error {
	result, err := h.marketService.GetSummary(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err, "Failed to get summary")
	}

	return c.JSON(http.StatusOK, result)
}

// Root godoc
// @Summary API information
// @Tags cryptos
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *CryptoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "CryptoRebound Ranking API - tracking rebound potential across 1000+ cryptocurrencies",
	})
}

func (h *CryptoHandler) handleServiceError(c echo.Context, err error, message string) error {
	if errors.Is(err, service.ErrNoMarketData) {
		h.logger.Warn(message, logger.ErrorField(err))
		return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Unable to fetch cryptocurrency data"})
	}
	h.logger.Error(message, logger.ErrorField(err))
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: message + ": " + err.Error()})
}

// queryInt parses an integer query parameter with a default and bounds. A max
// of zero disables the upper bound.
func queryInt(c echo.Context, name string, def, min, max int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("Invalid " + name + " parameter")
	}
	if value < min || (max > 0 && value > max) {
		return 0, errors.New("Parameter " + name + " is out of range")
	}
	return value, nil
}

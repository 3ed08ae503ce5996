package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"marketgateway/internal/alpaca"
	"marketgateway/internal/domain/dto"
	"marketgateway/internal/service"
)

// LiveBarSource exposes the latest live bar per subscribed symbol. Implemented
// by the background live-bar subscriber.
type LiveBarSource interface {
	Snapshot() map[string]alpaca.StreamBar
}

// Handler provides the HTTP handlers for the market data routes.
//
// Responsibilities:
//   - Read query parameters (only /get-stock-bars has any)
//   - Call the market service, exactly one vendor call per request
//   - Return the fixed single-field JSON envelope of each route
//   - Translate service failures into 500 error envelopes
type Handler struct {
	svc  service.MarketService
	live LiveBarSource
}

// NewHandler constructs a Handler from its dependencies.
func NewHandler(svc service.MarketService, live LiveBarSource) *Handler {
	return &Handler{svc: svc, live: live}
}

// Root handles GET /.
//
// Root godoc
// @Summary      Greeting
// @Description  Returns a hello-world message
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "hello world"})
}

// GetCryptoList handles GET /get-crypto-list.
//
// GetCryptoList godoc
// @Summary      List crypto assets
// @Description  Returns the symbols of all active crypto assets
// @Tags         assets
// @Produce      json
// @Success      200  {object}  dto.CryptoListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-crypto-list [get]
func (h *Handler) GetCryptoList(c *gin.Context) {
	symbols, err := h.svc.CryptoList(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch crypto assets", err))
		return
	}
	c.JSON(http.StatusOK, dto.CryptoListResponse{CryptoList: symbols})
}

// GetStockList handles GET /get-stock-list.
//
// GetStockList godoc
// @Summary      List US equities
// @Description  Returns the symbols of all active US equity assets
// @Tags         assets
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-stock-list [get]
func (h *Handler) GetStockList(c *gin.Context) {
	symbols, err := h.svc.StockList(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stock assets", err))
		return
	}
	c.JSON(http.StatusOK, dto.StockListResponse{StockList: symbols})
}

// GetMostActiveStocks handles GET /get-most-active-stocks.
//
// GetMostActiveStocks godoc
// @Summary      Most active stocks
// @Description  Returns the top 5 stocks by traded volume
// @Tags         screener
// @Produce      json
// @Success      200  {object}  dto.MostActiveStocksResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-most-active-stocks [get]
func (h *Handler) GetMostActiveStocks(c *gin.Context) {
	payload, err := h.svc.MostActiveStocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch most active stocks", err))
		return
	}
	c.JSON(http.StatusOK, dto.MostActiveStocksResponse{MostActiveStocks: payload})
}

// GetStockMarketMovers handles GET /get-stock-market-movers.
//
// GetStockMarketMovers godoc
// @Summary      Stock market movers
// @Description  Returns the top 6 stock gainers and losers
// @Tags         screener
// @Produce      json
// @Success      200  {object}  dto.StockMarketMoversResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-stock-market-movers [get]
func (h *Handler) GetStockMarketMovers(c *gin.Context) {
	payload, err := h.svc.StockMarketMovers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stock market movers", err))
		return
	}
	c.JSON(http.StatusOK, dto.StockMarketMoversResponse{StockMarketMovers: payload})
}

// GetCryptoMarketMovers handles GET /get-crypto-market-movers.
//
// GetCryptoMarketMovers godoc
// @Summary      Crypto market movers
// @Description  Returns crypto gainers and losers, at most 6 per side
// @Tags         screener
// @Produce      json
// @Success      200  {object}  dto.CryptoMarketMoversResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-crypto-market-movers [get]
func (h *Handler) GetCryptoMarketMovers(c *gin.Context) {
	payload, err := h.svc.CryptoMarketMovers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch crypto market movers", err))
		return
	}
	c.JSON(http.StatusOK, dto.CryptoMarketMoversResponse{CryptoMarketMovers: payload})
}

// GetStockBars handles GET /get-stock-bars.
//
// Query parameters:
//   - symbol (required): ticker to fetch bars for.
//   - start, end (optional): ISO-8601 bounds; malformed values silently fall
//     back to the default two-hour window ending now.
//   - timeframe (optional): bar granularity token, default 1Min.
//   - limit (optional): forwarded to the vendor verbatim.
//
// GetStockBars godoc
// @Summary      Historical stock bars
// @Description  Returns OHLCV bars for one symbol over a resolved time range
// @Tags         bars
// @Produce      json
// @Param        symbol     query     string  true   "Ticker symbol" example(AAPL)
// @Param        start      query     string  false  "ISO-8601 range start" example(2025-03-01T08:00:00Z)
// @Param        end        query     string  false  "ISO-8601 range end" example(2025-03-01T12:00:00Z)
// @Param        timeframe  query     string  false  "Bar granularity (1Min, 5Min, 15Min, 1Hour, 1Day)" example(1Min)
// @Param        limit      query     int     false  "Maximum bar count"
// @Success      200  {object}  dto.StockBarsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-stock-bars [get]
func (h *Handler) GetStockBars(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	// limit is only coerced, never validated; non-numeric values are treated
	// as absent and negatives go to the vendor as-is
	limit := 0
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	result, err := h.svc.StockBars(c.Request.Context(), service.BarsQuery{
		Symbol:    symbol,
		Start:     c.Query("start"),
		End:       c.Query("end"),
		Timeframe: c.Query("timeframe"),
		Limit:     limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stock bars", err))
		return
	}

	c.JSON(http.StatusOK, dto.StockBarsResponse{Symbol: result.Symbol, Bars: result.Bars})
}

// GetLiveBars handles GET /get-live-bars.
//
// The live feed is consumed by a background subscriber, not by this handler;
// the response is an immediate snapshot of the latest bar per subscribed
// symbol and is empty until the first bar arrives.
//
// GetLiveBars godoc
// @Summary      Latest live bars
// @Description  Returns the most recent live bar per subscribed symbol
// @Tags         bars
// @Produce      json
// @Success      200  {object}  dto.LiveBarsResponse
// @Router       /get-live-bars [get]
func (h *Handler) GetLiveBars(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LiveBarsResponse{LiveBars: h.live.Snapshot()})
}

package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketgateway/internal/middleware"
)

// NewRouter creates a Gin engine with all market data routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler).
//   - Permits all origins, methods, and headers (the service has no auth
//     layer of its own; trust is delegated to the vendor credentials).
//   - Adds request timeout handling (30 seconds; vendor calls are bounded by
//     the client's own timeout as well).
//   - Mounts Swagger docs (/swagger/*any).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", handler.Root)
	router.GET("/get-crypto-list", handler.GetCryptoList)
	router.GET("/get-stock-list", handler.GetStockList)
	router.GET("/get-most-active-stocks", handler.GetMostActiveStocks)
	router.GET("/get-stock-market-movers", handler.GetStockMarketMovers)
	router.GET("/get-crypto-market-movers", handler.GetCryptoMarketMovers)
	router.GET("/get-stock-bars", handler.GetStockBars)
	router.GET("/get-live-bars", handler.GetLiveBars)

	return router
}

package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"marketgateway/config"
	"marketgateway/internal/alpaca"
	"marketgateway/internal/api"
	"marketgateway/internal/livebars"
	"marketgateway/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, the live-bar subscriber to be run in the
// background, a cleanup function for graceful shutdown, and any error
// encountered during initialization.
//
// Responsibilities:
//   - Builds the vendor REST client from configured credentials.
//   - Builds the live-feed stream client and its background subscriber.
//   - Creates the service and HTTP handler layers and wires the router.
//   - Connects to Postgres only when CONN_STRING is set; the pool backs the
//     readiness probe and nothing else.
//   - Provides a cleanup function to release resources on shutdown.
func InitializeApp() (*gin.Engine, *livebars.Subscriber, func(), error) {
	cfg := config.AppConfig

	// Vendor REST client (trading, screener, historical data). One client
	// instance serves all three API slices; it is reused across requests.
	client := alpaca.NewClient(alpaca.ClientConfig{
		TradingBaseURL: cfg.Alpaca.TradingURL,
		DataBaseURL:    cfg.Alpaca.DataURL,
		PublicKey:      cfg.Alpaca.PublicKey,
		SecretKey:      cfg.Alpaca.SecretKey,
		Timeout:        cfg.Alpaca.HTTPTimeout,
	})

	// Live feed subscriber, run in the background by main
	stream := alpaca.NewStreamClient(cfg.Stream.URL, cfg.Alpaca.PublicKey, cfg.Alpaca.SecretKey)
	subscriber := livebars.NewSubscriber(stream, cfg.Stream.Symbols)

	// Service and HTTP layers
	svc := service.NewMarketService(client, client, client)
	handler := api.NewHandler(svc, subscriber)
	router := api.NewRouter(handler)

	// Optional Postgres readiness dependency
	var dbPing func() error
	cleanup := func() {}
	if cfg.Postgres.ConnString != "" {
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		dbPing = db.Ping
		cleanup = func() { _ = db.Close() }
	}

	// Register health and readiness probes
	api.NewHealthHandler(dbPing).Register(router)

	return router, subscriber, cleanup, nil
}

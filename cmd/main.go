package main

//
//  @title           marketgateway API
//  @version         1.0
//  @description     HTTP facade over the Alpaca market-data and brokerage API.
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        assets
//  @tag.description Crypto and US equity asset listings
//
//  @tag.name        screener
//  @tag.description Most-active securities and market movers
//
//  @tag.name        bars
//  @tag.description Historical and live OHLCV bars
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"marketgateway/config"
	_ "marketgateway/docs" // swagger docs
	"marketgateway/internal/app"
	"marketgateway/internal/livebars"
	"marketgateway/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until an OS interrupt signal (SIGINT, SIGTERM)
// arrives, then terminates the HTTP server, cancels the live-bar
// subscription, and runs the cleanup callback.
func gracefulShutdown(server *http.Server, stopStream context.CancelFunc, wait func() error, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	// Stop the background subscriber first so the stream closes cleanly
	stopStream()
	if err := wait(); err != nil {
		logger.L().Warn().Err(err).Msg("live bar subscriber exited with error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runSubscriber starts the live-bar subscriber under an errgroup and returns
// the group's Wait for shutdown sequencing.
func runSubscriber(ctx context.Context, sub *livebars.Subscriber) func() error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sub.Run(gctx)
	})
	return g.Wait
}

// main is the entry point of the marketgateway service.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	router, subscriber, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	// Live bar subscription runs for the life of the process, outside any
	// request handler
	streamCtx, stopStream := context.WithCancel(context.Background())
	wait := runSubscriber(streamCtx, subscriber)

	server := startServer(router, *port)
	gracefulShutdown(server, stopStream, wait, cleanup)
}

// Package livebars owns the long-lived live-data subscription. The stream
// runs as a background task started from main, never inside an HTTP handler;
// request handlers only read its latest-bar snapshot.
package livebars

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"marketgateway/internal/alpaca"
	"marketgateway/internal/logger"
)

// Streamer is the live feed session this subscriber consumes. One Run call
// owns one connection and returns when it ends.
type Streamer interface {
	Run(ctx context.Context, symbols []string, onBar func(alpaca.StreamBar)) error
}

// Subscriber consumes the live bar feed for a fixed symbol set, logs every
// incoming bar, and keeps the most recent bar per symbol for request
// handlers to snapshot.
type Subscriber struct {
	stream  Streamer
	symbols []string

	mu     sync.RWMutex
	latest map[string]alpaca.StreamBar
}

// NewSubscriber builds a subscriber for the given feed and symbol set.
func NewSubscriber(stream Streamer, symbols []string) *Subscriber {
	return &Subscriber{
		stream:  stream,
		symbols: symbols,
		latest:  make(map[string]alpaca.StreamBar),
	}
}

// Run consumes the feed until ctx is cancelled, reconnecting with
// exponential backoff after session failures. A session that delivered data
// resets the backoff before the next attempt.
//
// Returns nil on cancellation; Run never gives up on its own.
func (s *Subscriber) Run(ctx context.Context) error {
	if len(s.symbols) == 0 {
		logger.L().Warn().Msg("live bar subscriber disabled: no symbols configured")
		<-ctx.Done()
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // retry forever

	for {
		delivered := false
		err := s.stream.Run(ctx, s.symbols, func(bar alpaca.StreamBar) {
			delivered = true
			s.record(bar)
		})
		if ctx.Err() != nil {
			logger.L().Info().Msg("live bar subscriber stopped")
			return nil
		}
		if delivered {
			bo.Reset()
		}

		wait := bo.NextBackOff()
		logger.L().Warn().
			Err(err).
			Dur("retry_in", wait).
			Msg("live feed session ended, reconnecting")

		select {
		case <-ctx.Done():
			logger.L().Info().Msg("live bar subscriber stopped")
			return nil
		case <-time.After(wait):
		}
	}
}

// record logs one incoming bar and stores it as the latest for its symbol.
func (s *Subscriber) record(bar alpaca.StreamBar) {
	logger.L().Info().
		Str("symbol", bar.Symbol).
		Float64("open", bar.Open).
		Float64("high", bar.High).
		Float64("low", bar.Low).
		Float64("close", bar.Close).
		Float64("volume", bar.Volume).
		Time("bar_time", bar.Timestamp).
		Msg("live_bar")

	s.mu.Lock()
	s.latest[bar.Symbol] = bar
	s.mu.Unlock()
}

// Snapshot returns a copy of the latest bar per symbol. Empty until the
// first bar arrives.
func (s *Subscriber) Snapshot() map[string]alpaca.StreamBar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]alpaca.StreamBar, len(s.latest))
	for sym, bar := range s.latest {
		out[sym] = bar
	}
	return out
}

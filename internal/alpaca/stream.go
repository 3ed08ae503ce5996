package alpaca

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// handshakeTimeout bounds each step of the connect/auth/subscribe exchange.
const handshakeTimeout = 10 * time.Second

// StreamBar is one live OHLCV bar message (T == "b") from the vendor's
// websocket feed.
type StreamBar struct {
	Type       string    `json:"T"`
	Symbol     string    `json:"S"`
	Open       float64   `json:"o"`
	High       float64   `json:"h"`
	Low        float64   `json:"l"`
	Close      float64   `json:"c"`
	Volume     float64   `json:"v"`
	TradeCount int64     `json:"n"`
	VWAP       float64   `json:"vw"`
	Timestamp  time.Time `json:"t"`
}

// controlMessage is the common head of every feed message; the feed delivers
// JSON arrays of objects discriminated by the "T" field.
type controlMessage struct {
	Type string `json:"T"`
	Msg  string `json:"msg"`
	Code int    `json:"code"`
}

// streamRequest is the client-to-feed action envelope (auth, subscribe).
type streamRequest struct {
	Action string   `json:"action"`
	Key    string   `json:"key,omitempty"`
	Secret string   `json:"secret,omitempty"`
	Bars   []string `json:"bars,omitempty"`
}

// StreamClient opens live-data websocket sessions against the vendor feed.
// Each Run call owns exactly one connection.
type StreamClient struct {
	url    string
	key    string
	secret string
	dialer *websocket.Dialer
}

// NewStreamClient builds a stream client for the given feed URL and
// credentials.
func NewStreamClient(url, key, secret string) *StreamClient {
	return &StreamClient{
		url:    url,
		key:    key,
		secret: secret,
		dialer: &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
	}
}

// Run dials the feed, authenticates, subscribes to bars for the given
// symbols, and invokes onBar once per incoming bar until the context is
// cancelled or the connection drops.
//
// Returns nil on context cancellation and an error on any transport,
// handshake, or feed-level failure. Reconnection is the caller's concern.
func (s *StreamClient) Run(ctx context.Context, symbols []string, onBar func(StreamBar)) error {
	conn, resp, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("dial live feed %s: %w", s.url, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	// Unblock reads when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	// The feed greets with a "connected" control message, then expects auth
	// and answers "authenticated" before accepting subscriptions.
	if err := awaitControl(conn, "connected"); err != nil {
		return err
	}
	if err := writeRequest(conn, streamRequest{Action: "auth", Key: s.key, Secret: s.secret}); err != nil {
		return fmt.Errorf("send auth: %w", err)
	}
	if err := awaitControl(conn, "authenticated"); err != nil {
		return err
	}
	if err := writeRequest(conn, streamRequest{Action: "subscribe", Bars: symbols}); err != nil {
		return fmt.Errorf("send subscribe: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read live feed: %w", err)
		}
		bars, err := decodeBars(data)
		if err != nil {
			return err
		}
		for _, bar := range bars {
			onBar(bar)
		}
	}
}

// decodeBars extracts bar messages from one feed frame. Subscription acks and
// unknown message kinds are ignored; feed-level errors abort the session.
func decodeBars(frame []byte) ([]StreamBar, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(frame, &raws); err != nil {
		// non-array frames carry nothing this client consumes
		return nil, nil
	}
	var bars []StreamBar
	for _, raw := range raws {
		var head controlMessage
		if err := json.Unmarshal(raw, &head); err != nil {
			continue
		}
		switch head.Type {
		case "b":
			var bar StreamBar
			if err := json.Unmarshal(raw, &bar); err == nil {
				bars = append(bars, bar)
			}
		case "error":
			return nil, fmt.Errorf("live feed error %d: %s", head.Code, head.Msg)
		}
	}
	return bars, nil
}

// awaitControl reads frames until a success control message with the wanted
// text arrives. Feed errors and unexpected frames fail the handshake.
func awaitControl(conn *websocket.Conn, want string) error {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("await %q: %w", want, err)
		}
		var msgs []controlMessage
		if err := json.Unmarshal(data, &msgs); err != nil {
			continue
		}
		for _, m := range msgs {
			switch m.Type {
			case "success":
				if m.Msg == want {
					return nil
				}
			case "error":
				return fmt.Errorf("live feed refused %q step: %d %s", want, m.Code, m.Msg)
			}
		}
	}
}

func writeRequest(conn *websocket.Conn, req streamRequest) error {
	_ = conn.SetWriteDeadline(time.Now().Add(handshakeTimeout))
	return conn.WriteJSON(req)
}

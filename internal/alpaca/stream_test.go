package alpaca

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

// fakeFeed runs an in-process websocket feed that greets, authenticates, and
// acknowledges subscriptions the way the vendor does, then hands the
// connection to script.
func fakeFeed(t *testing.T, script func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer func() { _ = conn.Close() }()

		if err := conn.WriteMessage(websocket.TextMessage, []byte(`[{"T":"success","msg":"connected"}]`)); err != nil {
			t.Errorf("greet: %v", err)
			return
		}
		var auth map[string]any
		if err := conn.ReadJSON(&auth); err != nil {
			t.Errorf("read auth: %v", err)
			return
		}
		if auth["action"] != "auth" || auth["key"] != "stream-key" || auth["secret"] != "stream-secret" {
			t.Errorf("unexpected auth request: %v", auth)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(`[{"T":"success","msg":"authenticated"}]`)); err != nil {
			t.Errorf("ack auth: %v", err)
			return
		}
		var sub map[string]any
		if err := conn.ReadJSON(&sub); err != nil {
			t.Errorf("read subscribe: %v", err)
			return
		}
		if sub["action"] != "subscribe" {
			t.Errorf("unexpected subscribe request: %v", sub)
			return
		}
		script(conn)
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestStreamClient_DeliversBars(t *testing.T) {
	srv := fakeFeed(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`[
			{"T":"subscription","bars":["AAPL"]},
			{"T":"b","S":"AAPL","o":170.0,"h":170.5,"l":169.8,"c":170.2,"v":1200,"n":34,"vw":170.1,"t":"2025-03-01T10:30:00Z"}
		]`))
		// feed-level error terminates the session
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`[{"T":"error","code":406,"msg":"connection limit exceeded"}]`))
	})
	defer srv.Close()

	client := NewStreamClient(wsURL(srv), "stream-key", "stream-secret")

	var bars []StreamBar
	err := client.Run(context.Background(), []string{"AAPL"}, func(b StreamBar) {
		bars = append(bars, b)
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection limit exceeded")

	require.Len(t, bars, 1)
	require.Equal(t, "AAPL", bars[0].Symbol)
	require.Equal(t, 170.2, bars[0].Close)
	require.EqualValues(t, 34, bars[0].TradeCount)
}

func TestStreamClient_NilOnContextCancel(t *testing.T) {
	blocked := make(chan struct{})
	srv := fakeFeed(t, func(conn *websocket.Conn) {
		<-blocked
	})
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewStreamClient(wsURL(srv), "stream-key", "stream-secret")

	errCh := make(chan error, 1)
	go func() {
		errCh <- client.Run(ctx, []string{"AAPL"}, func(StreamBar) {})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestStreamClient_AuthRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`[{"T":"success","msg":"connected"}]`))
		var auth map[string]any
		_ = conn.ReadJSON(&auth)
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`[{"T":"error","code":402,"msg":"auth failed"}]`))
	}))
	defer srv.Close()

	client := NewStreamClient(wsURL(srv), "bad-key", "bad-secret")
	err := client.Run(context.Background(), []string{"AAPL"}, func(StreamBar) {})
	require.Error(t, err)
	require.Contains(t, err.Error(), "auth failed")
}

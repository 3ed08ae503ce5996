package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"marketgateway/internal/alpaca"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(&mockMarketService{}, &mockLiveBars{snap: map[string]alpaca.StreamBar{}})
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// RequestID middleware must inject the header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}

	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out["message"] != "hello world" {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestNewRouter_CORSAllowsAllOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(&mockMarketService{}, &mockLiveBars{})
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(&mockMarketService{}, &mockLiveBars{})
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodOptions, "/get-stock-bars", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent && w.Code != http.StatusOK {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("preflight missing Access-Control-Allow-Origin")
	}
}

func TestNewRouter_AllRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(
		&mockMarketService{cryptoList: []string{}, stockList: []string{}},
		&mockLiveBars{snap: map[string]alpaca.StreamBar{}},
	)
	r := NewRouter(h)

	routes := []string{
		"/",
		"/get-crypto-list",
		"/get-stock-list",
		"/get-most-active-stocks",
		"/get-stock-market-movers",
		"/get-crypto-market-movers",
		"/get-live-bars",
	}
	for _, route := range routes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, route, nil))
		if w.Code == http.StatusNotFound {
			t.Fatalf("route %s not registered", route)
		}
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketgateway/internal/alpaca"
)

type stubTrading struct {
	gotReq alpaca.GetAssetsRequest
	assets []alpaca.Asset
	err    error
}

func (s *stubTrading) GetAssets(_ context.Context, req alpaca.GetAssetsRequest) ([]alpaca.Asset, error) {
	s.gotReq = req
	return s.assets, s.err
}

type stubScreener struct {
	gotActives alpaca.MostActivesRequest
	gotMovers  alpaca.MarketMoversRequest
	actives    *alpaca.MostActives
	movers     *alpaca.MarketMovers
	err        error
}

func (s *stubScreener) GetMostActives(_ context.Context, req alpaca.MostActivesRequest) (*alpaca.MostActives, error) {
	s.gotActives = req
	return s.actives, s.err
}

func (s *stubScreener) GetMarketMovers(_ context.Context, req alpaca.MarketMoversRequest) (*alpaca.MarketMovers, error) {
	s.gotMovers = req
	return s.movers, s.err
}

type stubData struct {
	gotReq  alpaca.GetBarsRequest
	payload map[string]any
	err     error
}

func (s *stubData) GetStockBars(_ context.Context, req alpaca.GetBarsRequest) (map[string]any, error) {
	s.gotReq = req
	return s.payload, s.err
}

func newService(t *stubTrading, sc *stubScreener, d *stubData) MarketService {
	if t == nil {
		t = &stubTrading{}
	}
	if sc == nil {
		sc = &stubScreener{}
	}
	if d == nil {
		d = &stubData{}
	}
	return NewMarketService(t, sc, d)
}

func TestAssetLists(t *testing.T) {
	trading := &stubTrading{assets: []alpaca.Asset{
		{Symbol: "BTC/USD"}, {Symbol: "ETH/USD"},
	}}
	svc := newService(trading, nil, nil)

	symbols, err := svc.CryptoList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(symbols) != 2 || symbols[0] != "BTC/USD" || symbols[1] != "ETH/USD" {
		t.Fatalf("unexpected symbols: %v", symbols)
	}
	if trading.gotReq.AssetClass != alpaca.AssetClassCrypto {
		t.Fatalf("crypto list requested class %q", trading.gotReq.AssetClass)
	}

	if _, err := svc.StockList(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trading.gotReq.AssetClass != alpaca.AssetClassUSEquity {
		t.Fatalf("stock list requested class %q", trading.gotReq.AssetClass)
	}
}

func TestAssetLists_ErrorPropagates(t *testing.T) {
	svc := newService(&stubTrading{err: errors.New("boom")}, nil, nil)
	if _, err := svc.CryptoList(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestMostActiveStocks(t *testing.T) {
	screener := &stubScreener{actives: &alpaca.MostActives{
		MostActives: []alpaca.MostActive{{Symbol: "TSLA", Volume: 100}},
	}}
	svc := newService(nil, screener, nil)

	out, err := svc.MostActiveStocks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if screener.gotActives.By != alpaca.MostActivesByVolume || screener.gotActives.Top != 5 {
		t.Fatalf("unexpected vendor request: %+v", screener.gotActives)
	}
	payload, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected normalized mapping, got %T", out)
	}
	if _, ok := payload["most_actives"]; !ok {
		t.Fatalf("missing most_actives key: %v", payload)
	}
}

func TestStockMarketMovers(t *testing.T) {
	screener := &stubScreener{movers: &alpaca.MarketMovers{MarketType: "stocks"}}
	svc := newService(nil, screener, nil)

	if _, err := svc.StockMarketMovers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if screener.gotMovers.MarketType != alpaca.MarketTypeStocks || screener.gotMovers.Top != 6 {
		t.Fatalf("unexpected vendor request: %+v", screener.gotMovers)
	}
}

// Crypto movers must always request top 20 upstream and serve at most 6 per
// side.
func TestCryptoMarketMovers_FetchesWideTrimsNarrow(t *testing.T) {
	gainers := make([]alpaca.Mover, 9)
	for i := range gainers {
		gainers[i] = alpaca.Mover{Symbol: "G", Price: float64(i)}
	}
	screener := &stubScreener{movers: &alpaca.MarketMovers{
		Gainers:    gainers,
		Losers:     []alpaca.Mover{{Symbol: "L"}},
		MarketType: "crypto",
	}}
	svc := newService(nil, screener, nil)

	out, err := svc.CryptoMarketMovers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if screener.gotMovers.MarketType != alpaca.MarketTypeCrypto || screener.gotMovers.Top != 20 {
		t.Fatalf("unexpected vendor request: %+v", screener.gotMovers)
	}
	payload := out.(map[string]any)
	if got := len(payload["gainers"].([]any)); got != 6 {
		t.Fatalf("gainers trimmed to %d, want 6", got)
	}
	if got := len(payload["losers"].([]any)); got != 1 {
		t.Fatalf("losers length %d, want 1", got)
	}
}

func TestStockBars_UnwrapsBarsEnvelope(t *testing.T) {
	barList := []any{map[string]any{"o": 1.0, "c": 1.5}}
	data := &stubData{payload: map[string]any{
		"bars":            barList,
		"symbol":          "AAPL",
		"next_page_token": nil,
	}}
	svc := newService(nil, nil, data)

	out, err := svc.StockBars(context.Background(), BarsQuery{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Symbol != "AAPL" {
		t.Fatalf("symbol = %q", out.Symbol)
	}
	bars, ok := out.Bars.([]any)
	if !ok || len(bars) != 1 {
		t.Fatalf("expected unwrapped bar list, got %#v", out.Bars)
	}
}

func TestStockBars_RawPayloadWithoutEnvelope(t *testing.T) {
	data := &stubData{payload: map[string]any{"unexpected": "shape"}}
	svc := newService(nil, nil, data)

	out, err := svc.StockBars(context.Background(), BarsQuery{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload, ok := out.Bars.(map[string]any)
	if !ok || payload["unexpected"] != "shape" {
		t.Fatalf("expected raw payload passthrough, got %#v", out.Bars)
	}
}

func TestStockBars_ResolvesRangeAndTimeframe(t *testing.T) {
	data := &stubData{payload: map[string]any{"bars": []any{}}}
	svc := newService(nil, nil, data)

	before := time.Now().UTC()
	_, err := svc.StockBars(context.Background(), BarsQuery{
		Symbol:    "AAPL",
		Timeframe: "bogus",
		Limit:     -3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// unrecognized timeframe falls back to 1Min, defaults give a 2h window
	if data.gotReq.Timeframe != "1Min" {
		t.Fatalf("timeframe = %q, want 1Min", data.gotReq.Timeframe)
	}
	if got := data.gotReq.End.Sub(data.gotReq.Start); got != 2*time.Hour {
		t.Fatalf("window = %v, want 2h", got)
	}
	if data.gotReq.End.Before(before) {
		t.Fatalf("end %v should default to now", data.gotReq.End)
	}
	// negative limits are forwarded verbatim
	if data.gotReq.Limit != -3 {
		t.Fatalf("limit = %d, want -3", data.gotReq.Limit)
	}
}

func TestStockBars_ErrorPropagates(t *testing.T) {
	svc := newService(nil, nil, &stubData{err: errors.New("boom")})
	if _, err := svc.StockBars(context.Background(), BarsQuery{Symbol: "AAPL"}); err == nil {
		t.Fatal("expected error")
	}
}

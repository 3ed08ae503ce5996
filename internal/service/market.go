package service

import (
	"context"

	"marketgateway/internal/alpaca"
	"marketgateway/internal/market"
)

// Screener limits built into the facade's routes. Crypto movers are fetched
// wider than they are served: the vendor is always asked for the top 20 and
// the payload is trimmed to 6 per side on the way out.
const (
	mostActivesTop       = 5
	stockMoversTop       = 6
	cryptoMoversFetchTop = 20
	cryptoMoversLimit    = 6
)

// BarsQuery carries the raw query parameters of a historical bars request.
// Start, End, and Timeframe are resolved leniently; Symbol is the only
// required field and Limit is forwarded verbatim.
type BarsQuery struct {
	Symbol    string
	Start     string
	End       string
	Timeframe string
	Limit     int
}

// BarsResult is a resolved bars payload for one symbol.
type BarsResult struct {
	Symbol string
	Bars   any
}

// MarketService defines the business operations behind the HTTP routes: one
// vendor call per operation, reshaped into a plain JSON-serializable value.
// This decouples HTTP handlers from the vendor client.
type MarketService interface {
	CryptoList(ctx context.Context) ([]string, error)
	StockList(ctx context.Context) ([]string, error)
	MostActiveStocks(ctx context.Context) (any, error)
	StockMarketMovers(ctx context.Context) (any, error)
	CryptoMarketMovers(ctx context.Context) (any, error)
	StockBars(ctx context.Context, q BarsQuery) (*BarsResult, error)
}

type marketService struct {
	trading  alpaca.TradingAPI
	screener alpaca.ScreenerAPI
	data     alpaca.DataAPI
}

// NewMarketService wires the vendor clients into a MarketService.
func NewMarketService(trading alpaca.TradingAPI, screener alpaca.ScreenerAPI, data alpaca.DataAPI) MarketService {
	return &marketService{trading: trading, screener: screener, data: data}
}

// CryptoList returns the symbols of all active crypto assets.
func (s *marketService) CryptoList(ctx context.Context) ([]string, error) {
	return s.assetSymbols(ctx, alpaca.AssetClassCrypto)
}

// StockList returns the symbols of all active US equities.
func (s *marketService) StockList(ctx context.Context) ([]string, error) {
	return s.assetSymbols(ctx, alpaca.AssetClassUSEquity)
}

func (s *marketService) assetSymbols(ctx context.Context, class alpaca.AssetClass) ([]string, error) {
	assets, err := s.trading.GetAssets(ctx, alpaca.GetAssetsRequest{AssetClass: class})
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(assets))
	for _, a := range assets {
		symbols = append(symbols, a.Symbol)
	}
	return symbols, nil
}

// MostActiveStocks returns the top 5 stocks by traded volume, normalized.
func (s *marketService) MostActiveStocks(ctx context.Context) (any, error) {
	actives, err := s.screener.GetMostActives(ctx, alpaca.MostActivesRequest{
		By:  alpaca.MostActivesByVolume,
		Top: mostActivesTop,
	})
	if err != nil {
		return nil, err
	}
	return market.Normalize(actives), nil
}

// StockMarketMovers returns the top 6 stock gainers and losers, normalized.
func (s *marketService) StockMarketMovers(ctx context.Context) (any, error) {
	movers, err := s.screener.GetMarketMovers(ctx, alpaca.MarketMoversRequest{
		MarketType: alpaca.MarketTypeStocks,
		Top:        stockMoversTop,
	})
	if err != nil {
		return nil, err
	}
	return market.Normalize(movers), nil
}

// CryptoMarketMovers returns crypto gainers and losers: fetched top 20 from
// the vendor, trimmed to at most 6 per side.
func (s *marketService) CryptoMarketMovers(ctx context.Context) (any, error) {
	movers, err := s.screener.GetMarketMovers(ctx, alpaca.MarketMoversRequest{
		MarketType: alpaca.MarketTypeCrypto,
		Top:        cryptoMoversFetchTop,
	})
	if err != nil {
		return nil, err
	}
	normalized := market.Normalize(movers)
	if payload, ok := normalized.(map[string]any); ok {
		return market.TrimMovers(payload, cryptoMoversLimit), nil
	}
	return normalized, nil
}

// StockBars resolves the query's time range and timeframe, fetches bars for
// the symbol, and unwraps the vendor's "bars" envelope key when present.
func (s *marketService) StockBars(ctx context.Context, q BarsQuery) (*BarsResult, error) {
	tr := market.ResolveTimeRange(q.Start, q.End)
	tf := market.ResolveTimeframe(q.Timeframe)

	payload, err := s.data.GetStockBars(ctx, alpaca.GetBarsRequest{
		Symbol:    q.Symbol,
		Timeframe: string(tf),
		Start:     tr.Start,
		End:       tr.End,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, err
	}

	if bars, ok := payload["bars"]; ok {
		return &BarsResult{Symbol: q.Symbol, Bars: bars}, nil
	}
	return &BarsResult{Symbol: q.Symbol, Bars: payload}, nil
}

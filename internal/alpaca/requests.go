package alpaca

import "time"

// AssetClass selects the asset universe for an assets query.
type AssetClass string

const (
	AssetClassCrypto   AssetClass = "crypto"
	AssetClassUSEquity AssetClass = "us_equity"
)

// MarketType selects the market for a movers query.
type MarketType string

const (
	MarketTypeStocks MarketType = "stocks"
	MarketTypeCrypto MarketType = "crypto"
)

// MostActivesBy selects the ranking metric for a most-actives query.
type MostActivesBy string

const (
	MostActivesByVolume MostActivesBy = "volume"
	MostActivesByTrades MostActivesBy = "trades"
)

// GetAssetsRequest filters the assets listing.
type GetAssetsRequest struct {
	AssetClass AssetClass
	Status     string // defaults to "active" when empty
}

// MostActivesRequest asks the screener for the top securities by a metric.
type MostActivesRequest struct {
	By  MostActivesBy
	Top int
}

// MarketMoversRequest asks the screener for top gainers and losers.
type MarketMoversRequest struct {
	MarketType MarketType
	Top        int
}

// GetBarsRequest fetches historical OHLCV bars for one symbol.
//
// Timeframe carries a vendor-recognized granularity token; Limit is forwarded
// verbatim when positive and omitted otherwise.
type GetBarsRequest struct {
	Symbol    string
	Timeframe string
	Start     time.Time
	End       time.Time
	Limit     int
}

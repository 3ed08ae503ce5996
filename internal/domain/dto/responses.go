package dto

// Route response envelopes. Each endpoint answers a fixed single-field shape;
// payloads that pass through the normalizer stay loosely typed on purpose,
// since the vendor guarantees no fixed schema for them.

// MessageResponse is the root endpoint's greeting.
type MessageResponse struct {
	Message string `json:"message" example:"hello world"`
}

// CryptoListResponse wraps the crypto asset symbols.
type CryptoListResponse struct {
	CryptoList []string `json:"crypto_list"`
}

// StockListResponse wraps the US equity symbols.
type StockListResponse struct {
	StockList []string `json:"stock_list"`
}

// MostActiveStocksResponse wraps the normalized most-actives payload.
type MostActiveStocksResponse struct {
	MostActiveStocks any `json:"most_active_stocks"`
}

// StockMarketMoversResponse wraps the normalized stock movers payload.
type StockMarketMoversResponse struct {
	StockMarketMovers any `json:"stock_market_movers"`
}

// CryptoMarketMoversResponse wraps the normalized and trimmed crypto movers
// payload.
type CryptoMarketMoversResponse struct {
	CryptoMarketMovers any `json:"crypto_market_movers"`
}

// StockBarsResponse wraps historical bars for one symbol. Bars holds the
// unwrapped bar list when the vendor payload carried a "bars" envelope key,
// or the raw payload otherwise.
type StockBarsResponse struct {
	Symbol string `json:"symbol" example:"AAPL"`
	Bars   any    `json:"bars"`
}

// LiveBarsResponse wraps the latest live bar per subscribed symbol.
type LiveBarsResponse struct {
	LiveBars any `json:"live_bars"`
}

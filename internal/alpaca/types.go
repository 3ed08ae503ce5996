// Package alpaca is a typed client for the Alpaca trading and market-data
// REST APIs plus its live-data websocket feed. The vendor is consumed only
// through its published request/response contracts; auth, rate limiting, and
// data correctness remain the vendor's concern.
package alpaca

import (
	"encoding/json"
	"time"
)

// Asset is a tradable instrument as reported by GET /v2/assets. Only the
// fields this service reads are declared.
type Asset struct {
	ID       string `json:"id"`
	Class    string `json:"class"`
	Exchange string `json:"exchange"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Tradable bool   `json:"tradable"`
}

// MostActive is one entry of a most-actives screener response.
type MostActive struct {
	Symbol     string `json:"symbol"`
	Volume     int64  `json:"volume"`
	TradeCount int64  `json:"trade_count"`
}

// MostActives is the screener payload for GET /v1beta1/screener/stocks/most-actives.
type MostActives struct {
	MostActives []MostActive `json:"most_actives"`
	LastUpdated time.Time    `json:"last_updated"`
}

// Mover is one gaining or losing security in a market-movers response.
type Mover struct {
	Symbol        string  `json:"symbol"`
	PercentChange float64 `json:"percent_change"`
	Change        float64 `json:"change"`
	Price         float64 `json:"price"`
}

// MarketMovers is the screener payload for GET /v1beta1/screener/{market}/movers.
type MarketMovers struct {
	Gainers     []Mover   `json:"gainers"`
	Losers      []Mover   `json:"losers"`
	MarketType  string    `json:"market_type"`
	LastUpdated time.Time `json:"last_updated"`
}

// ToMap dumps the payload into a plain key/value mapping.
func (m *MostActives) ToMap() map[string]any { return structToMap(m) }

// ToMap dumps the payload into a plain key/value mapping. Gainers and losers
// come out as []any so the normalizer can trim them.
func (m *MarketMovers) ToMap() map[string]any { return structToMap(m) }

// structToMap round-trips a struct through its JSON form. The resulting
// mapping holds only plain types ([]any, map[string]any, float64, string),
// matching what the normalizer and the JSON encoder expect.
func structToMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

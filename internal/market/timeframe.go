package market

// Timeframe is a bar aggregation granularity recognized by the vendor API.
type Timeframe string

const (
	Timeframe1Min  Timeframe = "1Min"
	Timeframe5Min  Timeframe = "5Min"
	Timeframe15Min Timeframe = "15Min"
	Timeframe1Hour Timeframe = "1Hour"
	Timeframe1Day  Timeframe = "1Day"
)

var timeframes = map[string]Timeframe{
	"1Min":  Timeframe1Min,
	"5Min":  Timeframe5Min,
	"15Min": Timeframe15Min,
	"1Hour": Timeframe1Hour,
	"1Day":  Timeframe1Day,
}

// ResolveTimeframe maps a user-supplied token to a vendor-recognized
// granularity. Tokens must match exactly; anything else, including the empty
// string, falls back silently to one minute. It never fails.
func ResolveTimeframe(token string) Timeframe {
	if tf, ok := timeframes[token]; ok {
		return tf
	}
	return Timeframe1Min
}

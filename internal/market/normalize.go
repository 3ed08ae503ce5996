package market

// Mapper is implemented by vendor response types that can dump themselves
// into a plain JSON-serializable mapping. It replaces per-call capability
// probing with one explicit contract.
type Mapper interface {
	ToMap() map[string]any
}

// Normalize converts a vendor response into a plain JSON-serializable value.
// Mapper implementations are dumped through ToMap; anything else passes
// through unchanged and is assumed already serializable.
func Normalize(v any) any {
	if m, ok := v.(Mapper); ok {
		return m.ToMap()
	}
	return v
}

// moverSides are the payload keys subject to trimming.
var moverSides = []string{"gainers", "losers"}

// nestedListKeys are probed in priority order when a mover side is itself a
// mapping; the first key holding a list wins.
var nestedListKeys = []string{"items", "data", "list"}

// TrimMovers truncates the gainers/losers entries of a normalized mover
// payload to at most limit elements per side.
//
// Shapes handled per side:
//   - an ordered list: truncated to the first limit elements;
//   - a mapping with a list under "items", "data", or "list": that nested
//     list is truncated;
//   - anything else: passed through unmodified.
//
// The input mapping is never mutated. The result is a shallow copy with only
// the touched keys (and touched nested mappings) replaced.
func TrimMovers(payload map[string]any, limit int) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}

	for _, side := range moverSides {
		v, ok := payload[side]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case []any:
			if len(val) > limit {
				out[side] = val[:limit]
			}
		case map[string]any:
			for _, key := range nestedListKeys {
				inner, ok := val[key].([]any)
				if !ok {
					continue
				}
				if len(inner) > limit {
					nested := make(map[string]any, len(val))
					for k2, v2 := range val {
						nested[k2] = v2
					}
					nested[key] = inner[:limit]
					out[side] = nested
				}
				break
			}
		}
	}
	return out
}

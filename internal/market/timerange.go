package market

import (
	"strings"
	"time"
)

// TimeRange is a concrete UTC datetime window for a bars query.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// defaultWindow is applied when no start is supplied: the range covers the
// two hours leading up to the end bound.
const defaultWindow = 2 * time.Hour

// isoLayouts are tried in order. RFC3339 covers offset-qualified strings
// (a trailing Z is rewritten to +00:00 first); the remaining layouts accept
// offset-less datetimes and bare dates, which are taken as UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISOTime parses an ISO-8601 string into a UTC timestamp.
//
// A trailing Z designator is treated as the +00:00 offset before parsing.
// Malformed or empty input yields nil; parse failures are swallowed, never
// surfaced.
func ParseISOTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ResolveTimeRange turns optional ISO-8601 start/end strings into a concrete
// UTC range.
//
// Defaults:
//   - end absent or unparseable: current UTC instant.
//   - start absent or unparseable: end minus two hours.
//
// If the caller supplies start after end the bounds are swapped silently, so
// the vendor always sees a valid window. Rejecting would surface an error
// from a resolver whose contract is to swallow every parse problem.
func ResolveTimeRange(start, end string) TimeRange {
	e := ParseISOTime(end)
	if e == nil {
		now := time.Now().UTC()
		e = &now
	}
	s := ParseISOTime(start)
	if s == nil {
		t := e.Add(-defaultWindow)
		s = &t
	}
	if s.After(*e) {
		s, e = e, s
	}
	return TimeRange{Start: *s, End: *e}
}

// internal/api/handler/filter.go
package handler

import (
	"net/url"
	"time"

	"github.com/jstrand/tradelog/internal/journal"
)

// parseDate accepts RFC3339 timestamps or bare calendar dates.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// filterSpecFromQuery builds a FilterSpec from the shared query parameters
// used by the trades, stats and series endpoints. Anything unrecognized
// degrades to the all-data view; the filter layer never hard-fails.
func filterSpecFromQuery(q url.Values) journal.FilterSpec {
	switch q.Get("filter") {
	case "weekly":
		return journal.FilterSpec{Kind: journal.FilterWeekly, Period: q.Get("period")}
	case "monthly":
		return journal.FilterSpec{Kind: journal.FilterMonthly, Period: q.Get("period")}
	case "quarterly":
		return journal.FilterSpec{Kind: journal.FilterQuarterly, Period: q.Get("period")}
	case "range":
		spec := journal.FilterSpec{Kind: journal.FilterRange}
		if t, ok := parseDate(q.Get("from")); ok {
			spec.Start = t
		}
		if t, ok := parseDate(q.Get("to")); ok {
			spec.End = t
		}
		return spec
	default:
		return journal.FilterSpec{Kind: journal.FilterAll}
	}
}

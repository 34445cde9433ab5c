// internal/journal/filter.go
package journal

import (
	"fmt"
	"sort"
	"time"
)

// Granularity selects how dates are bucketed into calendar periods.
type Granularity string

const (
	GranWeekly    Granularity = "weekly"
	GranMonthly   Granularity = "monthly"
	GranQuarterly Granularity = "quarterly"
)

// FilterKind tags the filter variant.
type FilterKind string

const (
	FilterAll       FilterKind = "all"
	FilterWeekly    FilterKind = "weekly"
	FilterMonthly   FilterKind = "monthly"
	FilterQuarterly FilterKind = "quarterly"
	FilterRange     FilterKind = "range"
)

// FilterSpec describes a time window over the journal. Period holds the
// calendar period token for the weekly/monthly/quarterly kinds; Start and
// End bound the range kind inclusively.
type FilterSpec struct {
	Kind   FilterKind
	Period string
	Start  time.Time
	End    time.Time
}

// PeriodOf returns the calendar period token a date falls into:
// ISO week "2024-W05", month "2024-01", or quarter "2024-Q3".
func PeriodOf(date time.Time, g Granularity) string {
	switch g {
	case GranWeekly:
		y, w := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	case GranQuarterly:
		q := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("%04d-Q%d", date.Year(), q)
	default:
		return date.Format("2006-01")
	}
}

// Periods returns the distinct period tokens present in the data,
// sorted descending so the most recent period comes first.
func Periods(trades []TradeRecord, g Granularity) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range trades {
		p := PeriodOf(rec.Date, g)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// Filter selects the subset of trades matching the spec, sorted by date
// ascending with insertion order breaking ties. The input is never mutated.
//
// A range with only one bound, or with start after end, degrades to the
// unfiltered set rather than erroring; that mirrors a range the caller has
// not finished specifying.
func Filter(trades []TradeRecord, spec FilterSpec) []TradeRecord {
	sorted := sortByDate(trades)

	switch spec.Kind {
	case FilterWeekly, FilterMonthly, FilterQuarterly:
		return filterByPeriod(sorted, Granularity(spec.Kind), spec.Period)
	case FilterRange:
		if spec.Start.IsZero() || spec.End.IsZero() || spec.Start.After(spec.End) {
			return sorted
		}
		return filterByRange(sorted, spec.Start, spec.End)
	default:
		return sorted
	}
}

func filterByPeriod(sorted []TradeRecord, g Granularity, period string) []TradeRecord {
	out := make([]TradeRecord, 0, len(sorted))
	for _, rec := range sorted {
		if PeriodOf(rec.Date, g) == period {
			out = append(out, rec)
		}
	}
	return out
}

func filterByRange(sorted []TradeRecord, start, end time.Time) []TradeRecord {
	lo, hi := dateOnly(start), dateOnly(end)
	out := make([]TradeRecord, 0, len(sorted))
	for _, rec := range sorted {
		d := dateOnly(rec.Date)
		if !d.Before(lo) && !d.After(hi) {
			out = append(out, rec)
		}
	}
	return out
}

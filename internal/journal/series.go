// internal/journal/series.go
package journal

import "time"

// DailyBar is an OHLC-style aggregate of one calendar day's trade amounts:
// open/close are the first/last amounts recorded that day, high/low the
// max/min.
type DailyBar struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}

// CumulativePoint is one step of the running P&L total.
type CumulativePoint struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// BuildDailySeries groups trades by calendar day and aggregates each group
// into an OHLC bar, ordered by date ascending. Time-of-day is discarded.
func BuildDailySeries(trades []TradeRecord) []DailyBar {
	sorted := sortByDate(trades)

	var bars []DailyBar
	for _, rec := range sorted {
		day := dateOnly(rec.Date)
		if len(bars) > 0 && bars[len(bars)-1].Date.Equal(day) {
			bar := &bars[len(bars)-1]
			bar.Close = rec.Amount
			if rec.Amount > bar.High {
				bar.High = rec.Amount
			}
			if rec.Amount < bar.Low {
				bar.Low = rec.Amount
			}
			continue
		}
		bars = append(bars, DailyBar{
			Date:  day,
			Open:  rec.Amount,
			High:  rec.Amount,
			Low:   rec.Amount,
			Close: rec.Amount,
		})
	}
	return bars
}

// BuildCumulative computes the running P&L total per trade in date order,
// insertion order breaking ties.
func BuildCumulative(trades []TradeRecord) []CumulativePoint {
	sorted := sortByDate(trades)

	points := make([]CumulativePoint, 0, len(sorted))
	var total float64
	for _, rec := range sorted {
		total += rec.Amount
		points = append(points, CumulativePoint{Date: rec.Date, Total: total})
	}
	return points
}

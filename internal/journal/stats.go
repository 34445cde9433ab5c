// internal/journal/stats.go
package journal

import (
	"encoding/json"
	"math"
)

// Report holds aggregate performance statistics over a filtered trade set.
// Every field is derived; reports are recomputed fresh per filter change.
type Report struct {
	TotalTrades   int     `json:"total_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	WinRate       float64 `json:"win_rate"`
	ProfitFactor  float64 `json:"profit_factor"`
	AvgWin        float64 `json:"avg_win"`
	AvgLoss       float64 `json:"avg_loss"`
	Expectancy    float64 `json:"expectancy"`
	MaxDrawdown   float64 `json:"max_drawdown"`
	NetPnL        float64 `json:"net_pnl"`
}

// MarshalJSON encodes the report, substituting the string "inf" for the
// profit-factor sentinel since JSON has no infinity literal.
func (r Report) MarshalJSON() ([]byte, error) {
	type alias Report
	out := struct {
		alias
		ProfitFactor any `json:"profit_factor"`
	}{alias: alias(r), ProfitFactor: r.ProfitFactor}
	if math.IsInf(r.ProfitFactor, 1) {
		out.ProfitFactor = "inf"
	}
	return json.Marshal(out)
}

// ComputeStats computes performance statistics from trades. Empty input
// yields the zero report. Trades with a zero amount count toward the total
// but neither wins nor losses.
func ComputeStats(trades []TradeRecord) Report {
	if len(trades) == 0 {
		return Report{}
	}

	var wins, losses int
	var totalWins, totalLosses, net float64

	for _, rec := range trades {
		net += rec.Amount
		switch {
		case rec.Amount > 0:
			wins++
			totalWins += rec.Amount
		case rec.Amount < 0:
			losses++
			totalLosses += -rec.Amount
		}
	}

	winRate := float64(wins) / float64(len(trades))

	var profitFactor float64
	switch {
	case totalLosses > 0:
		profitFactor = totalWins / totalLosses
	case totalWins > 0:
		profitFactor = math.Inf(1)
	}

	var avgWin, avgLoss float64
	if wins > 0 {
		avgWin = totalWins / float64(wins)
	}
	if losses > 0 {
		avgLoss = totalLosses / float64(losses)
	}

	return Report{
		TotalTrades:   len(trades),
		WinningTrades: wins,
		LosingTrades:  losses,
		WinRate:       winRate,
		ProfitFactor:  profitFactor,
		AvgWin:        avgWin,
		AvgLoss:       avgLoss,
		Expectancy:    avgWin*winRate - avgLoss*(1-winRate),
		MaxDrawdown:   maxDrawdown(sortByDate(trades)),
		NetPnL:        net,
	}
}

// maxDrawdown finds the largest decline from a running peak of cumulative
// P&L, expressed as a non-positive amount. Expects date-ordered trades.
func maxDrawdown(sorted []TradeRecord) float64 {
	var cumulative, peak, maxDD float64
	for i, rec := range sorted {
		cumulative += rec.Amount
		if i == 0 || cumulative > peak {
			peak = cumulative
		}
		if dd := cumulative - peak; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}
